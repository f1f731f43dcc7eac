package main

import (
	"fmt"
	"os"

	"github.com/nof-sh/tacc/tacc"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <input-path> <output-path>\n", os.Args[0])
		os.Exit(1)
	}

	inputPath := os.Args[1]
	outputPath := os.Args[2]

	compiler := tacc.NewCompiler()
	if err := compiler.Compile(inputPath, outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Compilation failed: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("Compilation successful. Assembly written to %s\n", outputPath)
}
