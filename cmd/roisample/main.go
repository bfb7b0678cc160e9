package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/KyungWonPark/nifti"
	"github.com/gonum/matrix/mat64"

	"github.com/suejin73/dynamic-functional-connectivity/internal/calc"
	"github.com/suejin73/dynamic-functional-connectivity/internal/io"
)

func main() {
	niiPath := flag.String("nii", "", "4-D NIfTI image")
	atlasPath := flag.String("atlas", "", "voxel-to-ROI assignment file (x,y,z,roi lines)")
	tStart := flag.Int("tstart", 0, "first timepoint to sample (inclusive)")
	tEnd := flag.Int("tend", 0, "timepoint to stop sampling at (exclusive)")
	zscore := flag.Bool("zscore", false, "z-score each ROI series over time")
	workers := flag.Int("workers", 4, "z-scoring workers")
	out := flag.String("o", "timeseries.npy", "output matrix (.npy or .csv)")
	flag.Parse()

	if *niiPath == "" || *atlasPath == "" || *tEnd <= *tStart {
		flag.Usage()
		os.Exit(2)
	}

	rois, err := io.ReadROIAtlas(*atlasPath)
	if err != nil {
		log.Fatalf("[ERROR] %s", err)
	}
	fmt.Printf("Atlas: %d ROIs\n", len(rois))

	var img nifti.Nifti1Image
	img.LoadImage(*niiPath, true)

	fmt.Printf("Sampling timepoints [%d, %d)...\n", *tStart, *tEnd)
	ts, err := io.SampleROITimeSeries(&img, rois, *tStart, *tEnd)
	if err != nil {
		log.Fatalf("[ERROR] %s", err)
	}

	if *zscore {
		zs := mat64.NewDense(len(rois), *tEnd-*tStart, nil)
		calc.ZScoreRows(ts, zs, *workers)
		ts = zs
	}

	switch ext := strings.ToLower(filepath.Ext(*out)); ext {
	case ".npy":
		err = io.Mat64toNpy(*out, ts)
	case ".csv":
		err = io.Mat64toCSV(*out, ts)
	default:
		log.Fatalf("[ERROR] unsupported output format %q", ext)
	}
	if err != nil {
		log.Fatalf("[ERROR] %s", err)
	}

	fmt.Printf("Wrote %s\n", *out)

	return
}
