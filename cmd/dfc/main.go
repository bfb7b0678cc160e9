package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gonum/matrix/mat64"

	dfc "github.com/suejin73/dynamic-functional-connectivity"
	"github.com/suejin73/dynamic-functional-connectivity/internal/io"
	"github.com/suejin73/dynamic-functional-connectivity/internal/qc"
)

func main() {
	manifestPath := flag.String("manifest", "", "cohort manifest (yaml)")
	wl := flag.Int("wl", 0, "window length in timepoints (0 takes the manifest value, then the library default)")
	workers := flag.Int("workers", 0, "concurrent subjects (0 takes the manifest value, then 1)")
	outDir := flag.String("out", ".", "output directory")
	winFC := flag.Bool("winfc", false, "write each subject's window stack under out/winfc")
	meanFC := flag.Bool("meanfc", false, "write each subject's window-averaged FC under out/meanfc")
	npy := flag.Bool("npy", false, "also write the metric vectors as npy")
	bin := flag.Bool("bin", false, "also write the metric vectors as raw little-endian float64")
	stream := flag.Bool("stream", false, "load and compute one subject at a time with bounded memory")
	sd := flag.Float64("sd", 5, "outlier band of the QC report, in standard deviations")
	flag.Parse()

	if *manifestPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	m, err := io.LoadManifest(*manifestPath)
	if err != nil {
		log.Fatalf("[ERROR] %s", err)
	}

	opts := dfc.Options{WindowLength: m.Window, Workers: m.Workers}
	if *wl != 0 {
		opts.WindowLength = *wl
	}
	if *workers != 0 {
		opts.Workers = *workers
	}

	{ // Prepare the output tree
		dirs := []string{*outDir}
		if *winFC {
			dirs = append(dirs, filepath.Join(*outDir, "winfc"))
		}
		if *meanFC {
			dirs = append(dirs, filepath.Join(*outDir, "meanfc"))
		}

		for _, dir := range dirs {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Fatalf("[ERROR] %s", err)
			}
		}
	}

	fmt.Printf("Cohort: %s (%d subjects)\n", m.Name, len(m.Subjects))

	var (
		ids []string
		res *dfc.Result
	)

	if *stream {
		ids, res, err = runStreaming(m, opts, *outDir, *winFC, *meanFC)
	} else {
		ids, res, err = runPooled(m, opts, *outDir, *winFC, *meanFC)
	}
	if err != nil {
		log.Fatalf("[ERROR] %s", err)
	}

	{ // Write the metric vectors
		header := []string{"subject", "nv"}
		metrics := [][]float64{res.NV}
		if res.ICdyn != nil {
			header = append(header, "icdyn")
			metrics = append(metrics, res.ICdyn)
		}

		if err := io.MetricsToCSV(filepath.Join(*outDir, "metrics.csv"), header, ids, metrics...); err != nil {
			log.Fatalf("[ERROR] %s", err)
		}

		if *npy {
			if err := writeVectors(*outDir, ".npy", io.F64SliceToNpy, res); err != nil {
				log.Fatalf("[ERROR] %s", err)
			}
		}
		if *bin {
			if err := writeVectors(*outDir, ".bin", io.F64SliceToBin, res); err != nil {
				log.Fatalf("[ERROR] %s", err)
			}
		}
	}

	report(ids, res, *sd)

	fmt.Println("Finished.")

	return
}

// runPooled holds the whole cohort in memory and fans subjects out
// across workers.
func runPooled(m *io.Manifest, opts dfc.Options, outDir string, winFC bool, meanFC bool) ([]string, *dfc.Result, error) {
	cohort, ids, err := m.LoadCohort(opts.Workers)
	if err != nil {
		return nil, nil, err
	}

	fmt.Printf("Loaded %d subjects: %d ROIs, %d timepoints\n", len(ids), cohort.ROIs(), cohort.Timepoints())

	keep := winFC || meanFC

	var res *dfc.Result
	if keep {
		res, err = dfc.ComputeDynamicFC(cohort, opts)
	} else {
		res, err = dfc.ComputeDynamics(cohort, opts)
	}
	if err != nil {
		return nil, nil, err
	}

	if keep {
		for s, id := range ids {
			if err := writeStacks(outDir, id, res.WinFC[s], winFC, meanFC); err != nil {
				return nil, nil, err
			}
		}
	}

	return ids, res, nil
}

func writeStacks(outDir string, id string, stack []*mat64.Dense, winFC bool, meanFC bool) error {
	if winFC {
		if err := io.CubeToNpy(filepath.Join(outDir, "winfc", id+".npy"), stack); err != nil {
			return err
		}
	}

	if meanFC {
		mean, err := dfc.MeanWinFC(stack)
		if err != nil {
			return err
		}

		if err := io.Mat64toNpy(filepath.Join(outDir, "meanfc", id+".npy"), mean); err != nil {
			return err
		}
	}

	return nil
}

func writeVectors(outDir string, ext string, write func(string, []float64) error, res *dfc.Result) error {
	if err := write(filepath.Join(outDir, "nv"+ext), res.NV); err != nil {
		return err
	}

	if res.ICdyn != nil {
		if err := write(filepath.Join(outDir, "icdyn"+ext), res.ICdyn); err != nil {
			return err
		}
	}

	return nil
}

// report prints the cohort summary and QC flags as tab-separated lines.
func report(ids []string, res *dfc.Result, nSD float64) {
	flags := qc.Flags{}
	qc.FlagOutliers(flags, ids, res.NV, "NVOutlier", nSD)
	qc.FlagUndefined(flags, ids, res.NV, "NVUndefined")
	if res.ICdyn != nil {
		qc.FlagOutliers(flags, ids, res.ICdyn, "ICdynOutlier", nSD)
		qc.FlagUndefined(flags, ids, res.ICdyn, "ICdynUndefined")
	}
	qc.FlagDegenerate(flags, ids, res.Degenerate, "DegenerateWindows")

	fmt.Println("metric\tn\tmean\tsd\tmedian\tmin\tmax")
	printSummary("nv", res.NV)
	if res.ICdyn != nil {
		printSummary("icdyn", res.ICdyn)
	}

	if len(flags) == 0 {
		fmt.Printf("QC: 0 of %d subjects flagged\n", len(ids))
		return
	}

	fmt.Printf("QC: %d of %d subjects flagged: %+v\n", len(flags), len(ids), flags.Counts())
	for _, id := range ids {
		if f := flags.Get(id); f != "" {
			fmt.Printf("%s\t%s\n", id, f)
		}
	}

	return
}

func printSummary(name string, values []float64) {
	s, err := qc.Summarize(values)
	if err != nil {
		fmt.Printf("%s\tno finite values\n", name)
		return
	}

	fmt.Printf("%s\t%d\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\n", name, s.N, s.Mean, s.SD, s.Median, s.Min, s.Max)
}
