package calc

import (
	"math"
	"sync"

	"github.com/gonum/matrix/mat64"
)

type statistic struct {
	avg float64
	std float64
}

// rowStat computes the mean and standard deviation of one row over
// columns [start, start+span). A constant segment yields std 0.
func rowStat(mat *mat64.Dense, row int, start int, span int) statistic {
	var accVal float64
	var accSqrVal float64

	for t := start; t < start+span; t++ {
		value := mat.At(row, t)
		accVal += value
		accSqrVal += value * value
	}

	avgVal := accVal / float64(span)
	avgSqrVal := accSqrVal / float64(span)

	return statistic{
		avg: avgVal,
		std: math.Sqrt(avgSqrVal - (avgVal * avgVal)),
	}
}

func getStat(mat *mat64.Dense, stats []statistic, order <-chan int, wg *sync.WaitGroup) {
	_, numCols := mat.Dims()

	for {
		index, ok := <-order
		if ok {
			stats[index] = rowStat(mat, index, 0, numCols)

			wg.Done()
		} else {
			break
		}
	}

	return
}
