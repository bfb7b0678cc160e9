package calc

import (
	"log"
	"math"

	"github.com/gonum/matrix/mat64"
	"gonum.org/v1/gonum/floats"
)

// Acc adds inputMat into outputMat elementwise.
func Acc(inputMat *mat64.Dense, outputMat *mat64.Dense) {
	inputRows, inputCols := inputMat.Dims()
	outputRows, outputCols := outputMat.Dims()

	if inputRows != outputRows || inputCols != outputCols {
		log.Fatalf("[ERROR] Acc: input dims: %d by %d when output dims: %d by %d\n", inputRows, inputCols, outputRows, outputCols)
	}

	for i := 0; i < inputRows; i++ {
		for t := 0; t < inputCols; t++ {
			value := outputMat.At(i, t) + inputMat.At(i, t)
			outputMat.Set(i, t, value)
		}
	}

	return
}

// AccSkipNaN adds inputMat into outputMat elementwise, skipping NaN
// entries, and adds 1 to countMat wherever a value landed.
func AccSkipNaN(inputMat *mat64.Dense, outputMat *mat64.Dense, countMat *mat64.Dense) {
	inputRows, inputCols := inputMat.Dims()
	outputRows, outputCols := outputMat.Dims()
	countRows, countCols := countMat.Dims()

	if inputRows != outputRows || inputCols != outputCols || inputRows != countRows || inputCols != countCols {
		log.Fatalf("[ERROR] AccSkipNaN: input dims: %d by %d when output dims: %d by %d, count dims: %d by %d\n", inputRows, inputCols, outputRows, outputCols, countRows, countCols)
	}

	for i := 0; i < inputRows; i++ {
		for t := 0; t < inputCols; t++ {
			value := inputMat.At(i, t)
			if math.IsNaN(value) {
				continue
			}

			outputMat.Set(i, t, outputMat.At(i, t)+value)
			countMat.Set(i, t, countMat.At(i, t)+1)
		}
	}

	return
}

// DivElem divides outputMat by denomMat elementwise in place. A zero
// denominator over a zero numerator leaves NaN.
func DivElem(denomMat *mat64.Dense, outputMat *mat64.Dense) {
	denomRows, denomCols := denomMat.Dims()
	outputRows, outputCols := outputMat.Dims()

	if denomRows != outputRows || denomCols != outputCols {
		log.Fatalf("[ERROR] DivElem: denom dims: %d by %d when output dims: %d by %d\n", denomRows, denomCols, outputRows, outputCols)
	}

	for i := 0; i < denomRows; i++ {
		for t := 0; t < denomCols; t++ {
			outputMat.Set(i, t, outputMat.At(i, t)/denomMat.At(i, t))
		}
	}

	return
}

// Scale multiplies every entry of mat by c in place.
func Scale(c float64, mat *mat64.Dense) {
	floats.Scale(c, mat.RawMatrix().Data)

	return
}
