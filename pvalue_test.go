package dfc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCorrPValue(t *testing.T) {
	require.InDelta(t, 1.0, CorrPValue(0, 10), 1e-12)
	require.Equal(t, 0.0, CorrPValue(1, 10))
	require.Equal(t, 0.0, CorrPValue(-1, 10))

	// r=0.5 over 10 timepoints: t = 1.633 on 8 degrees of freedom
	require.InDelta(t, 0.141, CorrPValue(0.5, 10), 0.005)
}

func TestCorrPValueSymmetric(t *testing.T) {
	require.Equal(t, CorrPValue(0.6, 15), CorrPValue(-0.6, 15))
}

func TestCorrPValueMonotone(t *testing.T) {
	require.Greater(t, CorrPValue(0.2, 20), CorrPValue(0.8, 20))
	require.Greater(t, CorrPValue(0.5, 10), CorrPValue(0.5, 100))
}

func TestCorrPValueUndefined(t *testing.T) {
	require.True(t, math.IsNaN(CorrPValue(0.5, 2)))
	require.True(t, math.IsNaN(CorrPValue(0.5, 0)))
	require.True(t, math.IsNaN(CorrPValue(math.NaN(), 10)))
	require.True(t, math.IsNaN(CorrPValue(1.5, 10)))
}
