package io

import (
	"fmt"

	"github.com/gonum/matrix/mat64"
	"github.com/kshedden/gonpy"
)

// Mat64toNpy writes a mat64 matrix to a NumPy .npy binary file.
func Mat64toNpy(path string, matrix *mat64.Dense) error {
	rows, cols := matrix.Dims()
	rawMat := matrix.RawMatrix()

	w, err := gonpy.NewFileWriter(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w.Shape = []int{rows, cols}
	w.Version = 2
	if err := w.WriteFloat64(rawMat.Data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// NpytoMat64 reads a 2-D NumPy .npy binary file as a mat64 matrix.
func NpytoMat64(path string) (*mat64.Dense, error) {
	r, err := gonpy.NewFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if len(r.Shape) != 2 {
		return nil, fmt.Errorf("open %s: want a 2-D array, got shape %v", path, r.Shape)
	}

	rows := r.Shape[0]
	cols := r.Shape[1]
	data, err := r.GetFloat64()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return mat64.NewDense(rows, cols, data), nil
}

// F64SliceToNpy writes a float64 slice to a 1-D NumPy .npy binary file.
func F64SliceToNpy(path string, slice []float64) error {
	w, err := gonpy.NewFileWriter(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w.Shape = []int{len(slice)}
	w.Version = 2
	if err := w.WriteFloat64(slice); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// NpytoF64Slice reads a NumPy .npy binary file as a flat float64 slice.
func NpytoF64Slice(path string) ([]float64, error) {
	r, err := gonpy.NewFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	data, err := r.GetFloat64()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}

// CubeToNpy writes a stack of equally sized matrices to a 3-D NumPy .npy
// binary file with shape [len(stack), rows, cols].
func CubeToNpy(path string, stack []*mat64.Dense) error {
	if len(stack) == 0 {
		return fmt.Errorf("write %s: empty stack", path)
	}

	rows, cols := stack[0].Dims()
	flat := make([]float64, 0, len(stack)*rows*cols)

	for k, m := range stack {
		r, c := m.Dims()
		if r != rows || c != cols {
			return fmt.Errorf("write %s: matrix %d is %d by %d, want %d by %d", path, k, r, c, rows, cols)
		}

		flat = append(flat, m.RawMatrix().Data...)
	}

	w, err := gonpy.NewFileWriter(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w.Shape = []int{len(stack), rows, cols}
	w.Version = 2
	if err := w.WriteFloat64(flat); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
