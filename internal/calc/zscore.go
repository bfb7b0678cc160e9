package calc

import (
	"log"
	"sync"

	"github.com/gonum/matrix/mat64"
)

func zScoreRow(inputMat *mat64.Dense, outputMat *mat64.Dense, stats []statistic, order <-chan int, wg *sync.WaitGroup) {
	_, inputCols := inputMat.Dims()

	for {
		index, ok := <-order
		if ok {
			for t := 0; t < inputCols; t++ {
				value := inputMat.At(index, t)
				newValue := (value - stats[index].avg) / stats[index].std
				outputMat.Set(index, t, newValue)
			}

			wg.Done()
		} else {
			break
		}
	}

	return
}

// ZScoreRows z-scores each row of inputMat into outputMat using the given
// number of worker goroutines per stage.
func ZScoreRows(inputMat *mat64.Dense, outputMat *mat64.Dense, workers int) {
	inputRows, inputCols := inputMat.Dims()
	outputRows, outputCols := outputMat.Dims()

	{ // Check input matrix and output matrix dimensions
		if outputRows != inputRows || outputCols != inputCols {
			log.Fatalf("[ERROR] ZScoreRows: input is %d by %d but output is %d by %d\n", inputRows, inputCols, outputRows, outputCols)
		}
	}

	if workers < 1 {
		workers = 1
	}

	stats := make([]statistic, inputRows)

	{ // Get statistics for each ROI timeseries
		order := make(chan int, workers)
		var wg sync.WaitGroup

		wg.Add(inputRows)

		for i := 0; i < workers; i++ {
			go getStat(inputMat, stats, order, &wg)
		}

		for i := 0; i < inputRows; i++ {
			order <- i
		}

		wg.Wait()
		close(order)
	}

	{ // Z-score each row
		order := make(chan int, workers)
		var wg sync.WaitGroup

		wg.Add(inputRows)

		for i := 0; i < workers; i++ {
			go zScoreRow(inputMat, outputMat, stats, order, &wg)
		}

		for i := 0; i < inputRows; i++ {
			order <- i
		}

		wg.Wait()
		close(order)
	}

	return
}
