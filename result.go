package dfc

import (
	"fmt"

	"github.com/gonum/matrix/mat64"

	"github.com/suejin73/dynamic-functional-connectivity/internal/calc"
)

// Result holds the per-subject outputs of a dynamic FC computation.
type Result struct {
	// NV is the network variation of each subject: the mean absolute
	// successive change of z-transformed coupling over distinct ROI
	// pairs. NaN when no usable step exists.
	NV []float64

	// ICdyn is the inter-hemispheric dynamics of each subject, the same
	// reduction restricted to homotopic ROI pairs. It is nil when the
	// parcellation has an odd ROI count.
	ICdyn []float64

	// Degenerate holds, per subject, the step index at which the change
	// sum over distinct ROI pairs first came out infinite, or -1 when it
	// stays finite. Both means of an affected subject cover only the
	// steps before that index.
	Degenerate []int

	// WinFC holds each subject's stack of windowed correlation matrices,
	// indexed [subject][window]. It is nil for streaming computations.
	WinFC [][]*mat64.Dense
}

// MeanWinFC returns the elementwise mean of one subject's window stack.
func MeanWinFC(winFC []*mat64.Dense) (*mat64.Dense, error) {
	if len(winFC) == 0 {
		return nil, ErrNoWindows
	}

	rows, cols := winFC[0].Dims()
	acc := mat64.NewDense(rows, cols, nil)

	for k, w := range winFC {
		r, c := w.Dims()
		if r != rows || c != cols {
			return nil, fmt.Errorf("window %d is %d by %d, want %d by %d: %w", k, r, c, rows, cols, ErrDimensionMismatch)
		}

		calc.Acc(w, acc)
	}

	calc.Scale(1/float64(len(winFC)), acc)

	return acc, nil
}

// NaNMeanWinFC is MeanWinFC with NaN entries skipped per cell, for
// stacks over degenerate series whose zero-variance pairs correlate as
// NaN. A cell with no usable sample stays NaN; infinities propagate.
func NaNMeanWinFC(winFC []*mat64.Dense) (*mat64.Dense, error) {
	if len(winFC) == 0 {
		return nil, ErrNoWindows
	}

	rows, cols := winFC[0].Dims()
	acc := mat64.NewDense(rows, cols, nil)
	count := mat64.NewDense(rows, cols, nil)

	for k, w := range winFC {
		r, c := w.Dims()
		if r != rows || c != cols {
			return nil, fmt.Errorf("window %d is %d by %d, want %d by %d: %w", k, r, c, rows, cols, ErrDimensionMismatch)
		}

		calc.AccSkipNaN(w, acc, count)
	}

	calc.DivElem(count, acc)

	return acc, nil
}
