package calc

import (
	"math"
	"testing"

	"github.com/gonum/matrix/mat64"
	"github.com/stretchr/testify/require"
)

func TestWindowPearsonFullSpan(t *testing.T) {
	ts := mat64.NewDense(2, 4, []float64{
		1, 2, 3, 4,
		2, 1, 4, 3,
	})
	dst := mat64.NewDense(2, 2, nil)

	WindowPearson(ts, 0, 4, dst)

	// cov = 0.75, var = 1.25 for both rows
	require.InDelta(t, 0.6, dst.At(0, 1), 1e-12)
	require.InDelta(t, 0.6, dst.At(1, 0), 1e-12)
	require.Equal(t, 0.0, dst.At(0, 0))
	require.Equal(t, 0.0, dst.At(1, 1))
}

func TestWindowPearsonOffsetWindow(t *testing.T) {
	ts := mat64.NewDense(2, 6, []float64{
		9, 9, 1, 2, 3, 4,
		9, 9, 2, 1, 4, 3,
	})
	dst := mat64.NewDense(2, 2, nil)

	WindowPearson(ts, 2, 4, dst)

	require.InDelta(t, 0.6, dst.At(0, 1), 1e-12)
}

func TestWindowPearsonPerfectCorrelation(t *testing.T) {
	// Dyadic amplitudes and zero segment means keep every intermediate
	// exact, so proportional rows give exactly +1 or -1.
	ts := mat64.NewDense(3, 4, []float64{
		2, -2, 2, -2,
		4, -4, 4, -4,
		-4, 4, -4, 4,
	})
	dst := mat64.NewDense(3, 3, nil)

	WindowPearson(ts, 0, 4, dst)

	require.Equal(t, 1.0, dst.At(0, 1))
	require.Equal(t, -1.0, dst.At(0, 2))
	require.Equal(t, -1.0, dst.At(1, 2))
}

func TestWindowPearsonZeroVariance(t *testing.T) {
	ts := mat64.NewDense(3, 4, []float64{
		1, 1, 1, 1,
		1, 2, 3, 4,
		0, 0, 0, 0,
	})
	dst := mat64.NewDense(3, 3, nil)

	WindowPearson(ts, 0, 4, dst)

	require.True(t, math.IsNaN(dst.At(0, 1)))
	require.True(t, math.IsNaN(dst.At(0, 2)))
	require.True(t, math.IsNaN(dst.At(1, 2)))
	require.Equal(t, 0.0, dst.At(0, 0))
	require.Equal(t, 0.0, dst.At(2, 2))
}

func TestWindowPearsonSymmetry(t *testing.T) {
	ts := mat64.NewDense(4, 9, []float64{
		1, 5, 2, 8, 3, 7, 4, 6, 5,
		2, 3, 5, 7, 2, 4, 6, 8, 1,
		9, 1, 8, 2, 7, 3, 6, 4, 5,
		1, 1, 2, 3, 5, 8, 4, 2, 7,
	})
	dst := mat64.NewDense(4, 4, nil)

	for start := 0; start <= 4; start++ {
		WindowPearson(ts, start, 5, dst)

		require.True(t, SymCheck(dst, 0), "window start %d", start)
		require.True(t, ZeroDiagCheck(dst), "window start %d", start)
	}
}
