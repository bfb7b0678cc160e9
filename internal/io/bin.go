package io

import (
	"encoding/binary"
	"fmt"
	"os"
)

// F64SliceToBin writes a float64 slice to a little-endian binary file.
func F64SliceToBin(path string, slice []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := binary.Write(file, binary.LittleEndian, slice); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// F64SliceFromBin reads a little-endian binary file of float64 values.
func F64SliceFromBin(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if info.Size()%8 != 0 {
		return nil, fmt.Errorf("read %s: size %d is not a multiple of 8", path, info.Size())
	}

	slice := make([]float64, info.Size()/8)
	if err := binary.Read(file, binary.LittleEndian, slice); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return slice, nil
}
