package sbd

import (
	"log/slog"
	"runtime"

	"golang.org/x/text/unicode/norm"

	"github.com/jamesainslie/go-sbd/normalize"
)

// Option configures a Segmenter.
type Option func(*config)

type config struct {
	normalize   normalize.Config
	concurrency int
	logger      *slog.Logger
}

func defaultConfig() config {
	return config{
		normalize:   normalize.DefaultConfig(),
		concurrency: runtime.NumCPU(),
		logger:      slog.Default(),
	}
}

// WithMinLength drops sentences whose rune length is at most n (default: 3).
func WithMinLength(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.normalize.MinLength = n
		}
	}
}

// WithUnicodeForm applies a Unicode normalization form to every sentence
// (default: none).
func WithUnicodeForm(f norm.Form) Option {
	return func(c *config) {
		c.normalize.Form = f
		c.normalize.ApplyForm = true
	}
}

// WithConcurrency bounds the documents segmented at once by SegmentAll
// (default: runtime.NumCPU()).
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
