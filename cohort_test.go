package dfc

import (
	"testing"

	"github.com/gonum/matrix/mat64"
	"github.com/stretchr/testify/require"
)

func TestNewCohort(t *testing.T) {
	// block[roi][subject][time]
	block := [][][]float64{
		{{1, 2, 3}, {4, 5, 6}},
		{{7, 8, 9}, {10, 11, 12}},
	}

	c, err := NewCohort(block)
	require.NoError(t, err)

	require.Equal(t, 2, c.ROIs())
	require.Equal(t, 2, c.Subjects())
	require.Equal(t, 3, c.Timepoints())

	for i := 0; i < 2; i++ {
		for s := 0; s < 2; s++ {
			for tp := 0; tp < 3; tp++ {
				require.Equal(t, block[i][s][tp], c.Subject(s).At(i, tp))
			}
		}
	}
}

func TestNewCohortRagged(t *testing.T) {
	_, err := NewCohort([][][]float64{
		{{1, 2}, {3, 4}},
		{{5, 6}},
	})
	require.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = NewCohort([][][]float64{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7}},
	})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNewCohortEmpty(t *testing.T) {
	_, err := NewCohort(nil)
	require.ErrorIs(t, err, ErrEmptyCohort)

	_, err = NewCohort([][][]float64{})
	require.ErrorIs(t, err, ErrEmptyCohort)

	_, err = NewCohort([][][]float64{{}})
	require.ErrorIs(t, err, ErrEmptyCohort)

	_, err = NewCohort([][][]float64{{{}}})
	require.ErrorIs(t, err, ErrEmptyCohort)
}

func TestNewCohortFromTables(t *testing.T) {
	// tables[subject][time][roi]
	tables := [][][]float64{
		{
			{1, 10},
			{2, 20},
			{3, 30},
		},
		{
			{4, 40},
			{5, 50},
			{6, 60},
		},
	}

	c, err := NewCohortFromTables(tables)
	require.NoError(t, err)

	require.Equal(t, 2, c.ROIs())
	require.Equal(t, 2, c.Subjects())
	require.Equal(t, 3, c.Timepoints())

	for s := 0; s < 2; s++ {
		for tp := 0; tp < 3; tp++ {
			for i := 0; i < 2; i++ {
				require.Equal(t, tables[s][tp][i], c.Subject(s).At(i, tp))
			}
		}
	}
}

func TestNewCohortFromTablesRagged(t *testing.T) {
	_, err := NewCohortFromTables([][][]float64{
		{{1, 2}, {3, 4}},
		{{5, 6}},
	})
	require.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = NewCohortFromTables([][][]float64{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8, 9}},
	})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNewCohortFromMatrices(t *testing.T) {
	a := mat64.NewDense(3, 4, nil)
	b := mat64.NewDense(3, 4, nil)

	c, err := NewCohortFromMatrices([]*mat64.Dense{a, b})
	require.NoError(t, err)

	require.Equal(t, 3, c.ROIs())
	require.Equal(t, 4, c.Timepoints())
	require.Equal(t, 2, c.Subjects())
	require.Same(t, a, c.Subject(0))
	require.Same(t, b, c.Subject(1))

	_, err = NewCohortFromMatrices(nil)
	require.ErrorIs(t, err, ErrEmptyCohort)

	_, err = NewCohortFromMatrices([]*mat64.Dense{a, mat64.NewDense(2, 4, nil)})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}
