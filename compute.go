package dfc

import (
	"fmt"
	"sync"

	"github.com/gonum/matrix/mat64"

	"github.com/suejin73/dynamic-functional-connectivity/internal/calc"
)

// ComputeDynamicFC runs the sliding-window pipeline over a cohort and
// returns per-subject NV, ICdyn and the full window stacks. A series of
// T timepoints yields T - WindowLength windows at stride 1; a window
// spanning the whole series leaves an empty stack and NaN dynamics.
func ComputeDynamicFC(c *Cohort, opts Options) (*Result, error) {
	return compute(c, opts, true)
}

// ComputeDynamics is the streaming variant of ComputeDynamicFC. It
// produces the same NV and ICdyn without retaining window stacks,
// holding three ROI-by-ROI scratch matrices per in-flight subject.
func ComputeDynamics(c *Cohort, opts Options) (*Result, error) {
	return compute(c, opts, false)
}

func compute(c *Cohort, opts Options, keepWinFC bool) (*Result, error) {
	if c == nil || len(c.subjects) == 0 {
		return nil, ErrEmptyCohort
	}

	wl := opts.WindowLength
	if wl == 0 {
		wl = DefaultWindowLength
	}
	if wl < 1 {
		return nil, fmt.Errorf("window length %d: %w", opts.WindowLength, ErrWindowLength)
	}

	numWin := c.timepoints - wl
	if numWin < 1 {
		numWin = 0
		diag.Printf("[NOTICE] window length %d leaves no window in %d timepoints: dynamics undefined", wl, c.timepoints)
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(c.subjects) {
		workers = len(c.subjects)
	}

	res := &Result{
		NV:         make([]float64, len(c.subjects)),
		Degenerate: make([]int, len(c.subjects)),
	}

	if c.rois%2 == 0 {
		res.ICdyn = make([]float64, len(c.subjects))
	} else {
		diag.Printf("[NOTICE] inter-hemispheric dynamics skipped: parcellation has %d ROIs", c.rois)
	}

	if keepWinFC {
		res.WinFC = make([][]*mat64.Dense, len(c.subjects))
	}

	{ // Compute every subject's window stack and dynamics
		order := make(chan int, workers)
		var wg sync.WaitGroup

		wg.Add(len(c.subjects))

		for i := 0; i < workers; i++ {
			go subjectWorker(c, wl, res, order, &wg)
		}

		for s := 0; s < len(c.subjects); s++ {
			order <- s
		}

		wg.Wait()
		close(order)
	}

	diag.Printf("[DONE] dynamic FC: %d subjects, %d windows of length %d", len(c.subjects), numWin, wl)

	return res, nil
}

func subjectWorker(c *Cohort, wl int, res *Result, order <-chan int, wg *sync.WaitGroup) {
	for {
		s, ok := <-order
		if ok {
			computeSubject(c, s, wl, res)

			wg.Done()
		} else {
			break
		}
	}

	return
}

// computeSubject fills subject s's slots in res. Scratch matrices are
// allocated fresh per subject, never shared or reused across subjects.
func computeSubject(c *Cohort, s int, wl int, res *Result) {
	ts := c.subjects[s]
	keep := res.WinFC != nil

	numWin := c.timepoints - wl
	if numWin < 0 {
		numWin = 0
	}

	steps := numWin - 1
	if steps < 0 {
		steps = 0
	}

	zPrev := mat64.NewDense(c.rois, c.rois, nil)
	zCur := mat64.NewDense(c.rois, c.rois, nil)

	var rCur *mat64.Dense
	if !keep {
		rCur = mat64.NewDense(c.rois, c.rois, nil)
	}

	var winFC []*mat64.Dense
	if keep {
		winFC = make([]*mat64.Dense, numWin)
	}

	nvSteps := make([]float64, steps)

	var icSteps []float64
	if res.ICdyn != nil {
		icSteps = make([]float64, steps)
	}

	for k := 0; k < numWin; k++ {
		r := rCur
		if keep {
			r = mat64.NewDense(c.rois, c.rois, nil)
			winFC[k] = r
		}

		calc.WindowPearson(ts, k, wl, r)
		calc.FisherZ(r, zCur)

		if k > 0 {
			nvSteps[k-1] = calc.AbsDiffUpper(zPrev, zCur)
			if icSteps != nil {
				icSteps[k-1] = calc.AbsDiffPairs(zPrev, zCur)
			}
		}

		zPrev, zCur = zCur, zPrev
	}

	nv, nvInf := calc.CorrectedMean(nvSteps)
	res.NV[s] = nv

	if icSteps != nil {
		// Degeneracy is detected on the all-pairs sum; the homotopic
		// mean is corrected at that same index.
		res.ICdyn[s] = calc.CorrectedMeanAt(icSteps, nvInf)
	}

	res.Degenerate[s] = nvInf
	if nvInf >= 0 {
		diag.Printf("[NOTICE] subject %d: degenerate windows from step %d of %d", s, nvInf, len(nvSteps))
	}

	if keep {
		res.WinFC[s] = winFC
	}

	return
}
