package dfc

import (
	"fmt"

	"github.com/gonum/matrix/mat64"
)

// Cohort holds one ROI-by-timepoint matrix per subject. All subjects
// share the same parcellation and scan length.
type Cohort struct {
	rois       int
	timepoints int
	subjects   []*mat64.Dense
}

// NewCohort builds a cohort from a dense block indexed [roi][subject][time].
func NewCohort(block [][][]float64) (*Cohort, error) {
	if len(block) == 0 || len(block[0]) == 0 || len(block[0][0]) == 0 {
		return nil, ErrEmptyCohort
	}

	rois := len(block)
	numSubj := len(block[0])
	timepoints := len(block[0][0])

	for i := 0; i < rois; i++ {
		if len(block[i]) != numSubj {
			return nil, fmt.Errorf("ROI %d has %d subjects, want %d: %w", i, len(block[i]), numSubj, ErrDimensionMismatch)
		}

		for s := 0; s < numSubj; s++ {
			if len(block[i][s]) != timepoints {
				return nil, fmt.Errorf("ROI %d subject %d has %d timepoints, want %d: %w", i, s, len(block[i][s]), timepoints, ErrDimensionMismatch)
			}
		}
	}

	subjects := make([]*mat64.Dense, numSubj)
	for s := 0; s < numSubj; s++ {
		m := mat64.NewDense(rois, timepoints, nil)
		for i := 0; i < rois; i++ {
			for t := 0; t < timepoints; t++ {
				m.Set(i, t, block[i][s][t])
			}
		}

		subjects[s] = m
	}

	return &Cohort{rois: rois, timepoints: timepoints, subjects: subjects}, nil
}

// NewCohortFromTables builds a cohort from per-subject tables indexed
// [subject][time][roi], the usual orientation of parcellated exports.
func NewCohortFromTables(tables [][][]float64) (*Cohort, error) {
	if len(tables) == 0 || len(tables[0]) == 0 || len(tables[0][0]) == 0 {
		return nil, ErrEmptyCohort
	}

	numSubj := len(tables)
	timepoints := len(tables[0])
	rois := len(tables[0][0])

	subjects := make([]*mat64.Dense, numSubj)
	for s := 0; s < numSubj; s++ {
		if len(tables[s]) != timepoints {
			return nil, fmt.Errorf("subject %d has %d timepoints, want %d: %w", s, len(tables[s]), timepoints, ErrDimensionMismatch)
		}

		m := mat64.NewDense(rois, timepoints, nil)
		for tp := 0; tp < timepoints; tp++ {
			if len(tables[s][tp]) != rois {
				return nil, fmt.Errorf("subject %d timepoint %d has %d ROIs, want %d: %w", s, tp, len(tables[s][tp]), rois, ErrDimensionMismatch)
			}

			for i := 0; i < rois; i++ {
				m.Set(i, tp, tables[s][tp][i])
			}
		}

		subjects[s] = m
	}

	return &Cohort{rois: rois, timepoints: timepoints, subjects: subjects}, nil
}

// NewCohortFromMatrices builds a cohort from per-subject ROI-by-timepoint
// matrices. The matrices are adopted without copying.
func NewCohortFromMatrices(series []*mat64.Dense) (*Cohort, error) {
	if len(series) == 0 {
		return nil, ErrEmptyCohort
	}

	rois, timepoints := series[0].Dims()
	if rois == 0 || timepoints == 0 {
		return nil, ErrEmptyCohort
	}

	for s, m := range series {
		r, c := m.Dims()
		if r != rois || c != timepoints {
			return nil, fmt.Errorf("subject %d is %d by %d, want %d by %d: %w", s, r, c, rois, timepoints, ErrDimensionMismatch)
		}
	}

	return &Cohort{rois: rois, timepoints: timepoints, subjects: series}, nil
}

// ROIs returns the number of ROIs per subject.
func (c *Cohort) ROIs() int {
	return c.rois
}

// Timepoints returns the scan length in timepoints.
func (c *Cohort) Timepoints() int {
	return c.timepoints
}

// Subjects returns the number of subjects.
func (c *Cohort) Subjects() int {
	return len(c.subjects)
}

// Subject returns the ROI-by-timepoint matrix of subject s.
func (c *Cohort) Subject(s int) *mat64.Dense {
	return c.subjects[s]
}
