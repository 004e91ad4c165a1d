package sbd

import (
	"log/slog"
	"strings"

	"github.com/jamesainslie/go-sbd/blocks"
	"github.com/jamesainslie/go-sbd/document"
	"github.com/jamesainslie/go-sbd/normalize"
	"github.com/jamesainslie/go-sbd/splitter"
)

// Segmenter splits documents into sentences.
// It is safe for concurrent use.
type Segmenter struct {
	normalize   normalize.Config
	concurrency int
	logger      *slog.Logger
}

// New creates a Segmenter.
func New(opts ...Option) *Segmenter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Segmenter{
		normalize:   cfg.normalize,
		concurrency: cfg.concurrency,
		logger:      cfg.logger,
	}
}

// Segment splits an HTML or plain-text document into sentences in document
// order. Input without any block elements is treated as a single block.
func (s *Segmenter) Segment(doc string) []string {
	return s.segmentBlocks(blocks.Extract(doc), len(doc))
}

// segmentBlocks splits each block in order and filters the result.
func (s *Segmenter) segmentBlocks(texts []string, size int) []string {
	var raw []string
	for _, text := range texts {
		raw = append(raw, splitter.Split(text)...)
	}

	sentences := normalize.Sentences(raw, s.normalize)
	s.logger.Debug("segmented document",
		"bytes", size,
		"blocks", len(texts),
		"sentences", len(sentences),
		"dropped", len(raw)-len(sentences),
	)
	return sentences
}

// SegmentText splits plain text into sentences without interpreting markup.
func (s *Segmenter) SegmentText(text string) []string {
	sentences, _ := s.SegmentTextWithBoundaries(text)
	return sentences
}

// SegmentTextWithBoundaries splits plain text into sentences and returns
// boundary positions. Boundaries are byte offsets in text where each
// returned sentence ends.
func (s *Segmenter) SegmentTextWithBoundaries(text string) (sentences []string, boundaries []int) {
	for _, span := range splitter.Spans(text) {
		kept := normalize.Sentences([]string{span.Text}, s.normalize)
		if len(kept) == 0 {
			continue
		}
		sentences = append(sentences, kept[0])
		boundaries = append(boundaries, span.End)
	}

	s.logger.Debug("segmented text",
		"bytes", len(text),
		"sentences", len(sentences),
	)
	return sentences, boundaries
}

// Blocks returns the block texts Segment would split, in document order.
func (s *Segmenter) Blocks(doc string) []string {
	return blocks.Extract(doc)
}

// IsComplete returns whether text ends at a sentence boundary, so that its
// last sentence can be handed on without waiting for more input.
func (s *Segmenter) IsComplete(text string) bool {
	spans := splitter.Spans(text)
	if len(spans) == 0 {
		return false
	}
	return spans[len(spans)-1].Terminated
}

// SegmentFile loads a document from disk and segments it. HTML goes through
// block extraction, Markdown is split block by block and plain text is split
// as-is.
func (s *Segmenter) SegmentFile(path string) ([]string, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	return s.SegmentDocument(doc), nil
}

// SegmentDocument segments a loaded document according to its format.
func (s *Segmenter) SegmentDocument(doc *document.Document) []string {
	switch doc.Format {
	case document.FormatHTML:
		return s.Segment(doc.Text)
	case document.FormatMarkdown:
		return s.segmentBlocks(doc.Blocks, len(doc.Text))
	default:
		return s.SegmentText(doc.Text)
	}
}

// DocumentBlocks returns the block texts SegmentDocument would split. Plain
// text is a single block.
func (s *Segmenter) DocumentBlocks(doc *document.Document) []string {
	switch doc.Format {
	case document.FormatHTML:
		return blocks.Extract(doc.Text)
	case document.FormatMarkdown:
		return doc.Blocks
	default:
		if strings.TrimSpace(doc.Text) == "" {
			return nil
		}
		return []string{doc.Text}
	}
}
