package calc

import (
	"log"
	"math"

	"github.com/gonum/matrix/mat64"
)

// FisherZ applies the Fisher z-transform atanh(r) elementwise. Entries at
// exactly +1 or -1 map to +Inf or -Inf and entries outside [-1, 1] map to
// NaN, so degenerate correlations stay visible downstream.
func FisherZ(inputMat *mat64.Dense, outputMat *mat64.Dense) {
	inputRows, inputCols := inputMat.Dims()
	outputRows, outputCols := outputMat.Dims()

	if inputRows != outputRows || inputCols != outputCols {
		log.Fatalf("[ERROR] FisherZ: input dims: %d by %d when output dims: %d by %d\n", inputRows, inputCols, outputRows, outputCols)
	}

	for i := 0; i < inputRows; i++ {
		for t := 0; t < inputCols; t++ {
			outputMat.Set(i, t, math.Atanh(inputMat.At(i, t)))
		}
	}

	return
}
