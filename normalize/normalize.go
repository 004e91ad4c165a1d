// Package normalize cleans segmented sentences before they reach a speech
// engine or a reading view.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

// DefaultMinLength is the rune length at or below which a sentence is
// considered a fragment (bullet glyphs, stray punctuation, page numbers).
const DefaultMinLength = 3

// Config controls Sentences.
type Config struct {
	// MinLength drops sentences whose collapsed rune length is <= MinLength.
	MinLength int

	// Form, when ApplyForm is set, is applied before whitespace collapsing.
	Form      norm.Form
	ApplyForm bool
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{MinLength: DefaultMinLength}
}

// Sentences collapses whitespace in every sentence and drops fragments.
// Relative order is preserved.
func Sentences(sentences []string, cfg Config) []string {
	return lo.FilterMap(sentences, func(s string, _ int) (string, bool) {
		if cfg.ApplyForm {
			s = cfg.Form.String(s)
		}
		s = Collapse(s)
		return s, utf8.RuneCountInString(s) > cfg.MinLength
	})
}

// Collapse replaces every run of whitespace with a single space and trims
// both ends.
func Collapse(text string) string {
	if text == "" {
		return ""
	}

	var builder strings.Builder
	builder.Grow(len(text))
	needSpace := false

	for _, r := range text {
		if unicode.IsSpace(r) {
			// Only separate once something has been written.
			if builder.Len() > 0 {
				needSpace = true
			}
			continue
		}
		if needSpace {
			builder.WriteByte(' ')
			needSpace = false
		}
		builder.WriteRune(r)
	}

	return builder.String()
}
