// Package bench provides benchmarking utilities for sentence boundary detection.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Header contains metadata parsed from a corpus file header.
type Header struct {
	Source string
	Author string
	Title  string
}

// ParseHeader extracts metadata from header comments.
// Returns the header, remaining text after header, and any error.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	bodyStart := len(text)
	var lineEnd int

	for scanner.Scan() {
		line := scanner.Text()
		lineEnd += len(line) + 1 // +1 for newline

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineEnd - len(line) - 1
			break
		}

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Author:"); ok {
			h.Author = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}

	return h, strings.TrimSpace(text[bodyStart:]), nil
}

// Sentence is a gold sentence with byte offsets into Document.Text.
type Sentence struct {
	Text  string
	Start int
	End   int
}

// ParseGold rebuilds running text from a gold body that holds one sentence
// per line, with blank lines between paragraphs. Sentences in a paragraph
// are joined by a space and paragraphs by a blank line.
func ParseGold(body string) (string, []Sentence) {
	var (
		b         strings.Builder
		sentences []Sentence
		newPara   bool
	)

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			newPara = true
			continue
		}

		if b.Len() > 0 {
			if newPara {
				b.WriteString("\n\n")
			} else {
				b.WriteByte(' ')
			}
		}
		newPara = false

		start := b.Len()
		b.WriteString(line)
		sentences = append(sentences, Sentence{
			Text:  line,
			Start: start,
			End:   b.Len(),
		})
	}

	return b.String(), sentences
}

// Document is a loaded corpus file with its gold sentences.
type Document struct {
	ID        string // filename without extension
	Source    string
	Author    string
	Title     string
	Text      string
	Sentences []Sentence
}

// Boundaries returns the gold sentence end offsets.
func (d *Document) Boundaries() []int {
	out := make([]int, len(d.Sentences))
	for i, s := range d.Sentences {
		out[i] = s.End
	}
	return out
}

// LoadDocument loads and parses a corpus file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	header, body, err := ParseHeader(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	base := filepath.Base(path)
	text, sentences := ParseGold(body)

	return &Document{
		ID:        strings.TrimSuffix(base, filepath.Ext(base)),
		Source:    header.Source,
		Author:    header.Author,
		Title:     header.Title,
		Text:      text,
		Sentences: sentences,
	}, nil
}

// LoadCorpus loads all .txt corpus files from a directory.
func LoadCorpus(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var docs []*Document
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		doc, err := LoadDocument(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
