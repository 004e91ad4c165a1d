// Package splitter splits a single block of text into sentences using
// punctuation rules tuned for English prose.
package splitter

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentence is one sentence found in a block.
type Sentence struct {
	Text  string
	Start int // byte offset of Text in the block
	End   int // byte offset just past Text in the block

	// Terminated is false for trailing text that ran out before a boundary.
	Terminated bool
}

// Split returns the sentences of text in order. Each sentence is trimmed and
// non-empty. Empty or whitespace-only text yields nil.
func Split(text string) []string {
	spans := Spans(text)
	if len(spans) == 0 {
		return nil
	}
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.Text
	}
	return out
}

// Spans is like Split but also reports where each sentence sits in text.
func Spans(text string) []Sentence {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	runes, offsets := decode(text)

	var sentences []Sentence
	emit := func(from, to int, terminated bool) {
		raw := text[offsets[from]:offsets[to]]
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return
		}
		start := offsets[from] + len(raw) - len(strings.TrimLeftFunc(raw, unicode.IsSpace))
		sentences = append(sentences, Sentence{
			Text:       trimmed,
			Start:      start,
			End:        start + len(trimmed),
			Terminated: terminated,
		})
	}

	start := 0
	for i := 0; i < len(runes); i++ {
		if !IsTerminal(runes[i]) {
			continue
		}

		// "...", "?!" and the like form one terminator.
		for i+1 < len(runes) && IsTerminal(runes[i+1]) {
			i++
		}

		if !IsBoundary(runes, i, runes[start:i+1]) {
			continue
		}

		if closesQuote(runes, i) {
			i++
		}
		emit(start, i+1, true)

		for i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			i++
		}
		start = i + 1
	}

	if start < len(runes) {
		emit(start, len(runes), false)
	}

	return sentences
}

// decode returns the runes of text and the byte offset of each rune, with
// len(text) appended. Offsets come from the source bytes so invalid UTF-8
// sequences still map back to valid slice bounds.
func decode(text string) ([]rune, []int) {
	n := utf8.RuneCountInString(text)
	runes := make([]rune, 0, n)
	offsets := make([]int, 0, n+1)
	for i, r := range text {
		runes = append(runes, r)
		offsets = append(offsets, i)
	}
	return runes, append(offsets, len(text))
}
