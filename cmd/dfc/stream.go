package main

import (
	"fmt"
	stdio "io"
	"log"
	"os"

	"github.com/gonum/matrix/mat64"

	dfc "github.com/suejin73/dynamic-functional-connectivity"
	"github.com/suejin73/dynamic-functional-connectivity/internal/io"
)

// queueSize bounds how many subject matrices the loader keeps in
// flight ahead of the compute loop.
const queueSize = 4

type streamJob struct {
	subj int
	ts   *mat64.Dense
	err  error
}

// runStreaming computes subjects one at a time in manifest order while
// a loader goroutine reads ahead into a bounded set of slots. Memory
// stays proportional to queueSize subjects instead of the cohort.
func runStreaming(m *io.Manifest, opts dfc.Options, outDir string, winFC bool, meanFC bool) ([]string, *dfc.Result, error) {
	ids := make([]string, len(m.Subjects))
	for s := range m.Subjects {
		ids[s] = m.Subjects[s].ID
	}

	res := &dfc.Result{
		NV:         make([]float64, len(m.Subjects)),
		Degenerate: make([]int, len(m.Subjects)),
	}

	// Every subject goes through its own single-subject computation,
	// which would repeat the cohort-level notices. The driver silences
	// them and reports once itself, with cohort-order subject indices.
	dfc.SetDiagnosticOutput(stdio.Discard)
	defer dfc.SetDiagnosticOutput(os.Stderr)

	wl := opts.WindowLength
	if wl == 0 {
		wl = dfc.DefaultWindowLength
	}

	slots := make(chan struct{}, queueSize)
	jobs := make(chan streamJob, queueSize)

	go func() { // Loader: claim a slot, read the file, queue the job
		for s := range m.Subjects {
			slots <- struct{}{}

			ts, err := m.LoadSubject(s)
			jobs <- streamJob{subj: s, ts: ts, err: err}
		}

		close(jobs)

		return
	}()

	keep := winFC || meanFC

	var rois, timepoints int
	for job := range jobs {
		if job.err != nil {
			return nil, nil, fmt.Errorf("subject %s: %w", ids[job.subj], job.err)
		}

		r, tp := job.ts.Dims()
		if rois == 0 {
			rois, timepoints = r, tp

			if rois%2 != 0 {
				log.Printf("[NOTICE] inter-hemispheric dynamics skipped: parcellation has %d ROIs", rois)
			}
			if timepoints-wl < 1 {
				log.Printf("[NOTICE] window length %d leaves no window in %d timepoints: dynamics undefined", wl, timepoints)
			}
		} else if r != rois || tp != timepoints {
			return nil, nil, fmt.Errorf("subject %s: series is %d by %d, want %d by %d", ids[job.subj], r, tp, rois, timepoints)
		}

		one, err := dfc.NewCohortFromMatrices([]*mat64.Dense{job.ts})
		if err != nil {
			return nil, nil, err
		}

		var sub *dfc.Result
		if keep {
			sub, err = dfc.ComputeDynamicFC(one, opts)
		} else {
			sub, err = dfc.ComputeDynamics(one, opts)
		}
		if err != nil {
			return nil, nil, err
		}

		res.NV[job.subj] = sub.NV[0]
		res.Degenerate[job.subj] = sub.Degenerate[0]

		if sub.Degenerate[0] >= 0 {
			log.Printf("[NOTICE] subject %d: degenerate windows from step %d of %d", job.subj, sub.Degenerate[0], timepoints-wl-1)
		}

		if sub.ICdyn != nil {
			if res.ICdyn == nil {
				res.ICdyn = make([]float64, len(m.Subjects))
			}
			res.ICdyn[job.subj] = sub.ICdyn[0]
		}

		if keep {
			if err := writeStacks(outDir, ids[job.subj], sub.WinFC[0], winFC, meanFC); err != nil {
				return nil, nil, err
			}
		}

		fmt.Printf("Processed: %s\n", ids[job.subj])

		<-slots
	}

	numWin := timepoints - wl
	if numWin < 0 {
		numWin = 0
	}

	log.Printf("[DONE] dynamic FC: %d subjects, %d windows of length %d", len(ids), numWin, wl)

	return ids, res, nil
}
