package calc

import (
	"math"
	"runtime"
	"sync"

	"github.com/gonum/matrix/mat64"
)

// SymCheck checks symmetry within tolerance pre.
func SymCheck(matrix *mat64.Dense, pre float64) bool {
	rows, _ := matrix.Dims()
	workers := runtime.NumCPU()

	order := make(chan int, workers)
	isSymm := make([]bool, rows)
	var wg sync.WaitGroup

	wg.Add(rows)

	for i := 0; i < workers; i++ {
		go symCheck(matrix, isSymm, math.Abs(pre), order, &wg)
	}

	for i := 0; i < rows; i++ {
		order <- i
	}

	wg.Wait()
	close(order)

	symm := true
	for i := 0; i < rows; i++ {
		symm = symm && isSymm[i]
	}

	return symm
}

func symCheck(matrix *mat64.Dense, isSymm []bool, pre float64, order <-chan int, wg *sync.WaitGroup) {
	_, cols := matrix.Dims()

	for {
		index, ok := <-order
		if ok {
			isSymm[index] = true
			for i := index; i < cols; i++ {
				isSame := (math.Abs(matrix.At(index, i)-matrix.At(i, index)) <= pre)
				if !isSame {
					isSymm[index] = false
					break
				}
			}

			wg.Done()
		} else {
			break
		}
	}

	return
}

// ZeroDiagCheck reports whether every diagonal entry is exactly zero.
func ZeroDiagCheck(matrix *mat64.Dense) bool {
	rows, cols := matrix.Dims()
	if rows != cols {
		return false
	}

	for i := 0; i < rows; i++ {
		if matrix.At(i, i) != 0 {
			return false
		}
	}

	return true
}
