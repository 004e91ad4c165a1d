//go:build ignore

// Draft gold corpus files from raw Project Gutenberg downloads.
// The drafts are segmented by the rule engine and must be corrected by hand
// before they are moved into testdata/gold.
// Usage: go run ./scripts/process-gutenberg.go testdata/gutenberg/*_raw.txt
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jamesainslie/go-sbd/internal/bench"
)

// Book metadata
var books = map[string]struct {
	Title  string
	Author string
	ID     string
}{
	"pride_and_prejudice": {"Pride and Prejudice", "Jane Austen", "1342"},
	"moby_dick":           {"Moby Dick", "Herman Melville", "2701"},
	"great_expectations":  {"Great Expectations", "Charles Dickens", "1400"},
	"origin_of_species":   {"On the Origin of Species", "Charles Darwin", "1228"},
	"tom_sawyer":          {"The Adventures of Tom Sawyer", "Mark Twain", "74"},
	"jane_eyre":           {"Jane Eyre", "Charlotte Brontë", "1260"},
}

var args struct {
	Files  []string `arg:"" help:"Raw ebook files named <book>_raw.txt" type:"existingfile"`
	OutDir string   `name:"out" help:"Directory for drafts" default:"testdata/gutenberg"`
	Limit  int      `help:"Approximate body size in bytes (0 keeps everything)" default:"50000"`
}

func main() {
	kong.Parse(&args)

	for _, rawFile := range args.Files {
		baseName := strings.TrimSuffix(filepath.Base(rawFile), "_raw.txt")
		meta, ok := books[baseName]
		if !ok {
			fmt.Printf("Skipping unknown book: %s\n", baseName)
			continue
		}

		outFile := filepath.Join(args.OutDir, baseName+".txt")
		fmt.Printf("Processing %s...\n", baseName)
		header := bench.Header{
			Source: "https://www.gutenberg.org/ebooks/" + meta.ID,
			Author: meta.Author,
			Title:  meta.Title + " (draft)",
		}
		if err := processBook(rawFile, outFile, header); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", baseName, err)
			continue
		}
		fmt.Printf("  -> %s\n", outFile)
	}
}

func processBook(inPath, outPath string, header bench.Header) error {
	content, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	body := bench.StripGutenberg(string(content), args.Limit)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	return bench.WriteGold(out, header, bench.DraftGold(body))
}
