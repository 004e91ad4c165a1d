package splitter

import "unicode"

// IsTerminal reports whether r is a sentence-ending mark.
func IsTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// isQuote reports whether r can close a quotation after a terminator.
func isQuote(r rune) bool {
	switch r {
	case '"', '\'', '”', '’', '»':
		return true
	}
	return false
}

func isStraightQuote(r rune) bool {
	return r == '"' || r == '\''
}

// IsBoundary reports whether the terminator run ending at text[pos] closes a
// sentence. sentence holds the buffered text of the current sentence up to
// and including text[pos].
//
// Rules are evaluated in order; the first match wins:
//
//  1. '!' and '?' always end a sentence.
//  2. A period at the end of the text ends a sentence.
//  3. A period followed by a straight quote (" or ') and then whitespace or
//     end of text ends a sentence. Typographic closing quotes fall through to
//     the later rules, so "Mr.” Smith" stays together.
//  4. A period followed by a lowercase letter or a digit does not ("e.g.", "3.14").
//  5. A period after a known abbreviation does not ("Dr. Smith").
//  6. A period after a single letter ends a sentence only if the next word
//     starts uppercase ("plan b. then" stays together).
//  7. Anything else ends a sentence.
func IsBoundary(text []rune, pos int, sentence []rune) bool {
	if pos < 0 || pos >= len(text) {
		return false
	}
	mark := text[pos]
	if !IsTerminal(mark) {
		return false
	}
	if mark != '.' {
		return true
	}

	next := pos + 1
	if next >= len(text) {
		return true
	}
	r := text[next]

	if isStraightQuote(r) {
		after := next + 1
		if after >= len(text) || unicode.IsSpace(text[after]) {
			return true
		}
	}

	if unicode.IsLower(r) || unicode.IsDigit(r) {
		return false
	}

	word := wordBeforePeriod(sentence)
	if IsAbbreviation(string(word)) {
		return false
	}

	if isInitial(word) && unicode.IsSpace(r) {
		return startsUpper(text[next:])
	}

	return true
}

// wordBeforePeriod returns the letter/digit run preceding the final
// terminator of sentence. Punctuation touching the terminator, including
// earlier marks of the same run, is skipped.
func wordBeforePeriod(sentence []rune) []rune {
	end := len(sentence) - 2
	for end >= 0 && !isWordRune(sentence[end]) {
		end--
	}
	if end < 0 {
		return nil
	}
	start := end
	for start > 0 && isWordRune(sentence[start-1]) {
		start--
	}
	return sentence[start : end+1]
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isInitial(word []rune) bool {
	return len(word) == 1 && unicode.IsLetter(word[0])
}

// startsUpper reports whether the first non-space rune of rest is uppercase.
func startsUpper(rest []rune) bool {
	for _, r := range rest {
		if unicode.IsSpace(r) {
			continue
		}
		return unicode.IsUpper(r)
	}
	return false
}

// closesQuote reports whether the terminator at pos is directly followed by a
// closing quote that is itself followed by whitespace or end of text.
func closesQuote(text []rune, pos int) bool {
	next := pos + 1
	if next >= len(text) || !isQuote(text[next]) {
		return false
	}
	after := next + 1
	return after >= len(text) || unicode.IsSpace(text[after])
}
