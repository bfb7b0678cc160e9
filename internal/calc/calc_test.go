package calc

import (
	"math"
	"testing"

	"github.com/gonum/matrix/mat64"
	"github.com/stretchr/testify/require"
)

func TestFisherZ(t *testing.T) {
	in := mat64.NewDense(2, 3, []float64{
		0, 0.5, -0.5,
		1, -1, 1.5,
	})
	out := mat64.NewDense(2, 3, nil)

	FisherZ(in, out)

	require.Equal(t, 0.0, out.At(0, 0))
	require.InDelta(t, 0.5493061443340548, out.At(0, 1), 1e-15)
	require.InDelta(t, -0.5493061443340548, out.At(0, 2), 1e-15)
	require.True(t, math.IsInf(out.At(1, 0), 1))
	require.True(t, math.IsInf(out.At(1, 1), -1))
	require.True(t, math.IsNaN(out.At(1, 2)))
}

func TestAcc(t *testing.T) {
	in := mat64.NewDense(2, 2, []float64{1, 2, 3, 4})
	out := mat64.NewDense(2, 2, []float64{10, 20, 30, 40})

	Acc(in, out)
	Acc(in, out)

	require.Equal(t, 12.0, out.At(0, 0))
	require.Equal(t, 24.0, out.At(0, 1))
	require.Equal(t, 36.0, out.At(1, 0))
	require.Equal(t, 48.0, out.At(1, 1))
}

func TestAccSkipNaN(t *testing.T) {
	nan := math.NaN()
	out := mat64.NewDense(2, 2, nil)
	count := mat64.NewDense(2, 2, nil)

	AccSkipNaN(mat64.NewDense(2, 2, []float64{1, nan, 3, 4}), out, count)
	AccSkipNaN(mat64.NewDense(2, 2, []float64{1, 2, nan, 4}), out, count)

	require.Equal(t, 2.0, out.At(0, 0))
	require.Equal(t, 2.0, out.At(0, 1))
	require.Equal(t, 3.0, out.At(1, 0))
	require.Equal(t, 8.0, out.At(1, 1))

	require.Equal(t, 2.0, count.At(0, 0))
	require.Equal(t, 1.0, count.At(0, 1))
	require.Equal(t, 1.0, count.At(1, 0))
	require.Equal(t, 2.0, count.At(1, 1))
}

func TestDivElem(t *testing.T) {
	out := mat64.NewDense(2, 2, []float64{8, 9, 0, 5})
	denom := mat64.NewDense(2, 2, []float64{2, 3, 0, 1})

	DivElem(denom, out)

	require.Equal(t, 4.0, out.At(0, 0))
	require.Equal(t, 3.0, out.At(0, 1))
	require.True(t, math.IsNaN(out.At(1, 0)))
	require.Equal(t, 5.0, out.At(1, 1))
}

func TestScale(t *testing.T) {
	m := mat64.NewDense(2, 2, []float64{2, 4, 6, 8})

	Scale(0.5, m)

	require.Equal(t, 1.0, m.At(0, 0))
	require.Equal(t, 2.0, m.At(0, 1))
	require.Equal(t, 3.0, m.At(1, 0))
	require.Equal(t, 4.0, m.At(1, 1))
}

func TestZScoreRows(t *testing.T) {
	in := mat64.NewDense(2, 4, []float64{
		1, 2, 3, 4,
		10, 10, 10, 10,
	})
	out := mat64.NewDense(2, 4, nil)

	ZScoreRows(in, out, 2)

	std := math.Sqrt(1.25)
	require.InDelta(t, -1.5/std, out.At(0, 0), 1e-12)
	require.InDelta(t, -0.5/std, out.At(0, 1), 1e-12)
	require.InDelta(t, 0.5/std, out.At(0, 2), 1e-12)
	require.InDelta(t, 1.5/std, out.At(0, 3), 1e-12)

	// constant rows have no scale to normalize by
	for tp := 0; tp < 4; tp++ {
		require.True(t, math.IsNaN(out.At(1, tp)))
	}
}

func TestZScoreRowsWorkerCountInvariance(t *testing.T) {
	in := mat64.NewDense(3, 5, []float64{
		1, 5, 2, 8, 3,
		2, 3, 5, 7, 2,
		9, 1, 8, 2, 7,
	})

	seq := mat64.NewDense(3, 5, nil)
	par := mat64.NewDense(3, 5, nil)

	ZScoreRows(in, seq, 1)
	ZScoreRows(in, par, 4)

	require.Equal(t, seq.RawMatrix().Data, par.RawMatrix().Data)
}

func TestSymCheck(t *testing.T) {
	m := mat64.NewDense(3, 3, []float64{
		0, 0.5, -0.2,
		0.5, 0, 0.8,
		-0.2, 0.8, 0,
	})

	require.True(t, SymCheck(m, 0))

	m.Set(0, 1, 0.5+1e-6)
	require.False(t, SymCheck(m, 1e-9))
	require.True(t, SymCheck(m, 1e-3))
}

func TestZeroDiagCheck(t *testing.T) {
	m := mat64.NewDense(2, 2, []float64{0, 3, 3, 0})
	require.True(t, ZeroDiagCheck(m))

	m.Set(1, 1, 0.1)
	require.False(t, ZeroDiagCheck(m))

	require.False(t, ZeroDiagCheck(mat64.NewDense(2, 3, nil)))
}
