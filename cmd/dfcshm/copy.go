//go:build cgo

package main

import (
	"unsafe"

	"github.com/gonum/matrix/mat64"
)

// f64SliceToShm copies xs into an attached segment, starting offset
// float64 slots into it.
func f64SliceToShm(xs []float64, pArr unsafe.Pointer, offset int) {
	stride := uintptr(unsafe.Sizeof(float64(0)))

	for i, x := range xs {
		addr := (*float64)(unsafe.Pointer(uintptr(pArr) + uintptr(offset+i)*stride))

		*addr = x
	}

	return
}

// mat64toShm copies a matrix row-major into an attached segment,
// starting offset float64 slots into it.
func mat64toShm(matrix *mat64.Dense, pArr unsafe.Pointer, offset int) {
	rows, cols := matrix.Dims()

	stride := uintptr(unsafe.Sizeof(float64(0)))

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			index := uintptr(offset + i*cols + j)
			addr := (*float64)(unsafe.Pointer(uintptr(pArr) + index*stride))

			*addr = matrix.At(i, j)
		}
	}

	return
}

// stackToShm copies a window stack as consecutive row-major matrices.
func stackToShm(stack []*mat64.Dense, pArr unsafe.Pointer) {
	offset := 0

	for _, w := range stack {
		rows, cols := w.Dims()

		mat64toShm(w, pArr, offset)
		offset += rows * cols
	}

	return
}
