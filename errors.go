package dfc

import "errors"

var (
	// ErrEmptyCohort is returned when a cohort has no subjects, no ROIs
	// or no timepoints.
	ErrEmptyCohort = errors.New("dfc: empty cohort")

	// ErrDimensionMismatch is returned when per-subject inputs disagree
	// on ROI count or timepoint count, or when an input axis is ragged.
	ErrDimensionMismatch = errors.New("dfc: dimension mismatch")

	// ErrWindowLength is returned when the window length is negative.
	ErrWindowLength = errors.New("dfc: bad window length")

	// ErrNoWindows is returned when a window stack is empty.
	ErrNoWindows = errors.New("dfc: no windows")
)
