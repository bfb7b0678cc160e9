package main

import (
	"fmt"
	"log"
	"os"

	"github.com/suejin73/dynamic-functional-connectivity/internal/io"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s file.npy\n", os.Args[0])
		os.Exit(2)
	}

	fileName := os.Args[1]

	matrix, err := io.NpytoMat64(fileName)
	if err != nil {
		log.Fatalf("[ERROR] %s", err)
	}
	fmt.Println("Reading npy file complete")

	if err := io.Mat64toCSV(fileName+".csv", matrix); err != nil {
		log.Fatalf("[ERROR] %s", err)
	}

	return
}
