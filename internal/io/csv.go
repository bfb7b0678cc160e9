package io

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/gonum/matrix/mat64"
)

// Mat64toCSV saves a mat64 matrix as a CSV file.
func Mat64toCSV(path string, matrix *mat64.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	rows, _ := matrix.Dims()

	stride := runtime.NumCPU()
	parsed := make([]string, stride)

	for row := 0; row < rows; row += stride {
		var wg sync.WaitGroup
		jobMark := stride

		if row+stride >= rows {
			jobMark = rows - row
		}

		wg.Add(jobMark)
		for offset := 0; offset < jobMark; offset++ {
			parsed[offset] = ""
			go formatLine(matrix, parsed, offset, row, &wg)
		}
		wg.Wait()

		for i := 0; i < jobMark; i++ {
			fmt.Fprintf(w, "%s\n", parsed[i])
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func formatLine(matrix *mat64.Dense, parsed []string, offset int, row int, wg *sync.WaitGroup) {
	_, cols := matrix.Dims()

	num := ""
	for i := 0; i < cols; i++ {
		num += (strconv.FormatFloat(matrix.At(row+offset, i), 'g', -1, 64) + ", ")
	}

	num2 := strings.TrimSuffix(num, ", ")
	parsed[offset] += num2

	wg.Done()

	return
}

// MetricsToCSV writes per-subject scalar metrics as one labeled row per
// subject. header names the label column and one column per metric;
// every metric slice is parallel to ids.
func MetricsToCSV(path string, header []string, ids []string, metrics ...[]float64) error {
	for _, m := range metrics {
		if len(m) != len(ids) {
			return fmt.Errorf("write %s: metric length %d, want %d", path, len(m), len(ids))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	record := make([]string, 1+len(metrics))
	for i, id := range ids {
		record[0] = id
		for j, m := range metrics {
			record[j+1] = strconv.FormatFloat(m[i], 'g', -1, 64)
		}

		if err := w.Write(record); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// CSVtoMat64 reads a numeric CSV file as a mat64 matrix sized by the
// file's contents.
func CSVtoMat64(path string) (*mat64.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	csvReader := csv.NewReader(f)
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if len(records) == 0 || len(records[0]) == 0 {
		return nil, fmt.Errorf("parse %s: empty table", path)
	}

	rows := len(records)
	cols := len(records[0])
	matrix := mat64.NewDense(rows, cols, nil)

	workers := runtime.NumCPU()
	order := make(chan int, workers)
	errs := make([]error, rows)
	var wg sync.WaitGroup

	wg.Add(rows)

	for i := 0; i < workers; i++ {
		go parseLine(records, matrix, errs, order, &wg)
	}

	for i := 0; i < rows; i++ {
		order <- i
	}

	wg.Wait()
	close(order)

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	return matrix, nil
}

func parseLine(records [][]string, matrix *mat64.Dense, errs []error, order <-chan int, wg *sync.WaitGroup) {
	_, cols := matrix.Dims()

	for {
		index, ok := <-order
		if ok {
			for i := 0; i < cols; i++ {
				str := strings.TrimSpace(records[index][i])
				value, err := strconv.ParseFloat(str, 64)
				if err != nil {
					errs[index] = fmt.Errorf("row %d col %d: %w", index, i, err)
					break
				}

				matrix.Set(index, i, value)
			}

			wg.Done()
		} else {
			break
		}
	}

	return
}
