package io

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/KyungWonPark/nifti"
	"github.com/gonum/matrix/mat64"
)

// Voxel addresses one voxel of a 4-D acquisition.
type Voxel struct {
	X uint32
	Y uint32
	Z uint32
}

// ReadROIAtlas parses a voxel-to-ROI assignment file. Every non-empty,
// non-comment line is "x,y,z,roi" with 0-based ROI labels. The returned
// voxel lists are indexed by label and every label must be populated.
func ReadROIAtlas(path string) ([][]Voxel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open atlas %s: %w", path, err)
	}
	defer f.Close()

	var rois [][]Voxel

	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("atlas %s line %d: want x,y,z,roi", path, lineNo)
		}

		vals := make([]int, 4)
		for i, part := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || v < 0 {
				return nil, fmt.Errorf("atlas %s line %d: bad field %q", path, lineNo, part)
			}

			vals[i] = v
		}

		roi := vals[3]
		for roi >= len(rois) {
			rois = append(rois, nil)
		}

		rois[roi] = append(rois[roi], Voxel{uint32(vals[0]), uint32(vals[1]), uint32(vals[2])})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read atlas %s: %w", path, err)
	}

	if len(rois) == 0 {
		return nil, fmt.Errorf("atlas %s: no voxels", path)
	}

	for i, list := range rois {
		if len(list) == 0 {
			return nil, fmt.Errorf("atlas %s: ROI %d has no voxels", path, i)
		}
	}

	return rois, nil
}

// SampleROITimeSeries averages each ROI's voxel signals at every
// timepoint of [timeStart, timeEnd), producing an ROI-by-timepoint
// matrix. ROIs are sampled concurrently.
func SampleROITimeSeries(img *nifti.Nifti1Image, rois [][]Voxel, timeStart int, timeEnd int) (*mat64.Dense, error) {
	if len(rois) == 0 {
		return nil, fmt.Errorf("no ROIs to sample")
	}
	if timeStart < 0 || timeEnd <= timeStart {
		return nil, fmt.Errorf("bad time range [%d, %d)", timeStart, timeEnd)
	}

	timePoints := timeEnd - timeStart
	out := mat64.NewDense(len(rois), timePoints, nil)

	var wg sync.WaitGroup
	for i := 0; i < len(rois); i++ {
		wg.Add(1)
		go func(i int) {
			for t := timeStart; t < timeEnd; t++ {
				acc := 0.0
				cnt := 0
				for _, v := range rois[i] {
					acc += float64(img.GetAt(v.X, v.Y, v.Z, uint32(t)))
					cnt++
				}

				avg := (acc / float64(cnt))
				out.Set(i, t-timeStart, avg)
			}

			wg.Done()
			return
		}(i)
	}
	wg.Wait()

	return out, nil
}
