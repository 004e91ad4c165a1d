//go:build ignore

// Convert UD English Web Treebank CoNLL-U files into gold corpus files.
// Treebank sentence splits are already gold, so no hand correction is needed.
// Usage: go run ./scripts/process-ud-ewt.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/jamesainslie/go-sbd/internal/bench"
)

const source = "https://github.com/UniversalDependencies/UD_English-EWT"

var args struct {
	InDir  string   `name:"in" help:"Directory with en_ewt-ud-*.conllu files" default:"testdata/ud-ewt"`
	OutDir string   `name:"out" help:"Directory for gold files" default:"testdata/ud-ewt"`
	Splits []string `help:"Treebank splits to convert" default:"train,dev,test"`
}

func main() {
	kong.Parse(&args)

	for _, split := range args.Splits {
		inFile := filepath.Join(args.InDir, fmt.Sprintf("en_ewt-ud-%s.conllu", split))
		outFile := filepath.Join(args.OutDir, fmt.Sprintf("ud_ewt_%s.txt", split))

		fmt.Printf("Processing %s...\n", split)
		n, err := convert(inFile, outFile, split)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inFile, err)
			continue
		}
		fmt.Printf("  -> %s (%d sentences)\n", outFile, n)
	}
}

func convert(inPath, outPath, split string) (int, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return 0, fmt.Errorf("opening file: %w", err)
	}
	defer in.Close()

	paragraphs, err := bench.ParseCoNLLU(in)
	if err != nil {
		return 0, err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("creating file: %w", err)
	}
	defer out.Close()

	header := bench.Header{Source: source, Title: "UD English EWT " + split}
	if err := bench.WriteGold(out, header, paragraphs); err != nil {
		return 0, err
	}

	n := 0
	for _, p := range paragraphs {
		n += len(p)
	}
	return n, nil
}
