package calc

import (
	"log"
	"math"

	"github.com/gonum/matrix/mat64"
)

// AbsDiffUpper sums |b_ij - a_ij| over the strict upper triangle of two
// square matrices. NaN terms are skipped; infinite terms propagate to the
// result. A sum with no usable terms is 0.
func AbsDiffUpper(a *mat64.Dense, b *mat64.Dense) float64 {
	aRows, aCols := a.Dims()
	bRows, bCols := b.Dims()

	if aRows != bRows || aCols != bCols || aRows != aCols {
		log.Fatalf("[ERROR] AbsDiffUpper: dims %d by %d vs %d by %d\n", aRows, aCols, bRows, bCols)
	}

	var sum float64
	for i := 0; i < aRows; i++ {
		for j := i + 1; j < aCols; j++ {
			diff := math.Abs(b.At(i, j) - a.At(i, j))
			if !math.IsNaN(diff) {
				sum += diff
			}
		}
	}

	return sum
}

// AbsDiffPairs sums |b_ij - a_ij| over the ROI pairs (i, i+rows/2) for
// i < rows/2, the homotopic pairing of a hemisphere-ordered parcellation.
// NaN terms are skipped; infinite terms propagate to the result.
func AbsDiffPairs(a *mat64.Dense, b *mat64.Dense) float64 {
	aRows, aCols := a.Dims()
	bRows, bCols := b.Dims()

	if aRows != bRows || aCols != bCols || aRows != aCols {
		log.Fatalf("[ERROR] AbsDiffPairs: dims %d by %d vs %d by %d\n", aRows, aCols, bRows, bCols)
	}

	half := aRows / 2

	var sum float64
	for i := 0; i < half; i++ {
		diff := math.Abs(b.At(i, i+half) - a.At(i, i+half))
		if !math.IsNaN(diff) {
			sum += diff
		}
	}

	return sum
}

// FirstInf returns the index of the first infinite entry, or -1 if none.
func FirstInf(xs []float64) int {
	for i, x := range xs {
		if math.IsInf(x, 0) {
			return i
		}
	}

	return -1
}

// ZeroInf replaces infinite entries with 0 in place.
func ZeroInf(xs []float64) {
	for i, x := range xs {
		if math.IsInf(x, 0) {
			xs[i] = 0
		}
	}

	return
}

// CorrectedMean averages a step sequence. A sequence with no infinite
// entries is averaged over its full length. When an infinite entry is
// present the sequence is degenerate: infinite entries are zeroed in
// place and the divisor becomes the index of the first one, which is the
// number of steps before degeneracy set in. Returns the mean and the
// index of the first infinite entry (-1 when none). An empty sequence or
// one that is degenerate from step 0 yields NaN.
func CorrectedMean(steps []float64) (float64, int) {
	firstInf := FirstInf(steps)

	return CorrectedMeanAt(steps, firstInf), firstInf
}

// CorrectedMeanAt applies the degeneracy correction with an index
// detected on another sequence: a non-negative firstInf zeroes the
// infinite entries in place and becomes the divisor, -1 averages the
// full length. A zero divisor yields NaN.
func CorrectedMeanAt(steps []float64, firstInf int) float64 {
	div := len(steps)
	if firstInf >= 0 {
		ZeroInf(steps)
		div = firstInf
	}

	if div == 0 {
		return math.NaN()
	}

	var sum float64
	for _, v := range steps {
		sum += v
	}

	return sum / float64(div)
}
