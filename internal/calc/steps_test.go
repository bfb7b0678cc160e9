package calc

import (
	"math"
	"testing"

	"github.com/gonum/matrix/mat64"
	"github.com/stretchr/testify/require"
)

func TestAbsDiffUpper(t *testing.T) {
	a := mat64.NewDense(3, 3, []float64{
		0, 1, 2,
		100, 0, 3,
		100, 100, 0,
	})
	b := mat64.NewDense(3, 3, []float64{
		0, 2, math.NaN(),
		-5, 0, 7,
		-5, -5, 0,
	})

	// |2-1| + skipped NaN + |7-3|; the lower triangle never contributes
	require.Equal(t, 5.0, AbsDiffUpper(a, b))
}

func TestAbsDiffUpperInfPropagates(t *testing.T) {
	a := mat64.NewDense(2, 2, []float64{0, 1, 1, 0})
	b := mat64.NewDense(2, 2, []float64{0, math.Inf(1), math.Inf(1), 0})

	require.True(t, math.IsInf(AbsDiffUpper(a, b), 1))
}

func TestAbsDiffUpperAllNaN(t *testing.T) {
	a := mat64.NewDense(2, 2, []float64{0, math.NaN(), math.NaN(), 0})
	b := mat64.NewDense(2, 2, []float64{0, 1, 1, 0})

	require.Equal(t, 0.0, AbsDiffUpper(a, b))
}

func TestAbsDiffPairs(t *testing.T) {
	a := mat64.NewDense(4, 4, nil)
	b := mat64.NewDense(4, 4, nil)

	// homotopic pairs of a 4-ROI parcellation are (0,2) and (1,3)
	a.Set(0, 2, 1)
	a.Set(1, 3, 2)
	b.Set(0, 2, 4)
	b.Set(1, 3, math.NaN())

	// everything off the pair entries must be ignored
	a.Set(0, 1, 50)
	b.Set(2, 3, -50)

	require.Equal(t, 3.0, AbsDiffPairs(a, b))
}

func TestFirstInf(t *testing.T) {
	require.Equal(t, -1, FirstInf(nil))
	require.Equal(t, -1, FirstInf([]float64{1, 2, 3}))
	require.Equal(t, 1, FirstInf([]float64{1, math.Inf(1), math.Inf(1)}))
	require.Equal(t, 0, FirstInf([]float64{math.Inf(-1), 2}))
}

func TestZeroInf(t *testing.T) {
	xs := []float64{1, math.Inf(1), math.NaN(), math.Inf(-1)}
	ZeroInf(xs)

	require.Equal(t, 1.0, xs[0])
	require.Equal(t, 0.0, xs[1])
	require.True(t, math.IsNaN(xs[2]))
	require.Equal(t, 0.0, xs[3])
}

var correctedMeanTests = []struct {
	name     string
	steps    []float64
	want     float64
	firstInf int
}{
	{"clean", []float64{1, 2, 3}, 2, -1},
	{"single step", []float64{2}, 2, -1},
	{"all zero", []float64{0, 0, 0}, 0, -1},
	{"inf tail", []float64{1, 3, math.Inf(1), 0}, 2, 2},
	{"inf mid", []float64{1, math.Inf(1), 3, math.Inf(1)}, 4, 1},
}

func TestCorrectedMean(t *testing.T) {
	for _, test := range correctedMeanTests {
		steps := append([]float64(nil), test.steps...)
		got, firstInf := CorrectedMean(steps)

		require.Equal(t, test.firstInf, firstInf, test.name)
		require.Equal(t, test.want, got, test.name)
	}
}

func TestCorrectedMeanUndefined(t *testing.T) {
	got, firstInf := CorrectedMean(nil)
	require.True(t, math.IsNaN(got))
	require.Equal(t, -1, firstInf)

	got, firstInf = CorrectedMean([]float64{math.Inf(1), 5})
	require.True(t, math.IsNaN(got))
	require.Equal(t, 0, firstInf)
}

func TestCorrectedMeanAt(t *testing.T) {
	steps := []float64{1, 3, math.Inf(1), 5}
	require.Equal(t, 4.5, CorrectedMeanAt(steps, 2))
	require.Equal(t, []float64{1, 3, 0, 5}, steps)

	// a finite sequence cut at an index detected on another sequence
	require.Equal(t, 10.0, CorrectedMeanAt([]float64{2, 4, 6, 8}, 2))
	require.Equal(t, 5.0, CorrectedMeanAt([]float64{2, 4, 6, 8}, -1))

	require.True(t, math.IsNaN(CorrectedMeanAt([]float64{2, 4}, 0)))
	require.True(t, math.IsNaN(CorrectedMeanAt(nil, -1)))
}
