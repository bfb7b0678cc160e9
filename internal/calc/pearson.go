package calc

import (
	"log"

	"github.com/gonum/matrix/mat64"
)

// WindowPearson fills dst with the Pearson correlation matrix of the rows
// of timeSeriesMat restricted to columns [start, start+span) and zeroes
// the diagonal. Pairs involving a zero-variance segment come out NaN or
// infinite and are left as they are.
func WindowPearson(timeSeriesMat *mat64.Dense, start int, span int, dst *mat64.Dense) {
	inputRows, inputCols := timeSeriesMat.Dims()
	outputRows, outputCols := dst.Dims()

	{ // Check window range and output matrix dimensions
		if start < 0 || span < 1 || start+span > inputCols {
			log.Fatalf("[ERROR] WindowPearson: window [%d, %d) out of range for %d columns\n", start, start+span, inputCols)
		}

		if outputRows != inputRows || outputCols != inputRows {
			log.Fatalf("[ERROR] WindowPearson: input is %d by %d but output is %d by %d\n", inputRows, inputCols, outputRows, outputCols)
		}
	}

	stats := make([]statistic, inputRows)

	{ // Get statistics for each ROI segment
		for i := 0; i < inputRows; i++ {
			stats[i] = rowStat(timeSeriesMat, i, start, span)
		}
	}

	{ // Calculate Pearson's correlation
		for from := 0; from < inputRows; from++ {
			dst.Set(from, from, 0)

			for to := from + 1; to < inputRows; to++ {
				var accProd float64
				for t := start; t < start+span; t++ {
					accProd += timeSeriesMat.At(from, t) * timeSeriesMat.At(to, t)
				}

				cov := (accProd / float64(span)) - (stats[from].avg * stats[to].avg)
				pearson := cov / (stats[from].std * stats[to].std)

				dst.Set(from, to, pearson)
				dst.Set(to, from, pearson)
			}
		}
	}

	return
}
