package bench

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	sbd "github.com/jamesainslie/go-sbd"
)

// ParseCoNLLU reads sentence texts from a CoNLL-U treebank, grouped into
// paragraphs by "# newpar" comments. Only "# text = " lines are used.
func ParseCoNLLU(r io.Reader) ([][]string, error) {
	var (
		paragraphs [][]string
		current    []string
		text       string
	)

	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, current)
			current = nil
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "# newpar"), strings.HasPrefix(line, "# newdoc"):
			flush()
		case strings.HasPrefix(line, "# text = "):
			text = strings.TrimSpace(strings.TrimPrefix(line, "# text = "))
		case line == "" && text != "":
			// Blank line = end of sentence
			current = append(current, text)
			text = ""
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning conllu: %w", err)
	}

	if text != "" {
		current = append(current, text)
	}
	flush()
	return paragraphs, nil
}

var (
	gutenbergStart = []string{
		"*** START OF THE PROJECT GUTENBERG EBOOK",
		"*** START OF THIS PROJECT GUTENBERG EBOOK",
		"*END*THE SMALL PRINT",
	}
	gutenbergEnd = []string{
		"*** END OF THE PROJECT GUTENBERG EBOOK",
		"*** END OF THIS PROJECT GUTENBERG EBOOK",
		"End of Project Gutenberg",
		"End of the Project Gutenberg",
	}

	// Matches: "Chapter I", "CHAPTER 1", "CHAPTER I.", "Chapter 1.]", etc.
	chapterRe      = regexp.MustCompile(`(?m)^(Chapter|CHAPTER)\s+([IVX]+|[0-9]+)[\.\]\s]`)
	romanRe        = regexp.MustCompile(`^[IVXLC]+\.?$`)
	illustrationRe = regexp.MustCompile(`\[Illustration[^\]]*\]`)
	multiBlankRe   = regexp.MustCompile(`\n{3,}`)
)

// StripGutenberg removes the Project Gutenberg license boilerplate and front
// matter from a raw ebook and reflows it into paragraphs separated by blank
// lines. Chapter headings become paragraphs of their own. When limit > 0 the
// body is cut at the first sentence end after limit bytes.
func StripGutenberg(raw string, limit int) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	for _, marker := range gutenbergStart {
		if idx := strings.Index(text, marker); idx != -1 {
			if eol := strings.Index(text[idx:], "\n"); eol != -1 {
				text = text[idx+eol+1:]
			}
			break
		}
	}
	for _, marker := range gutenbergEnd {
		if idx := strings.Index(text, marker); idx != -1 {
			text = text[:idx]
			break
		}
	}

	if loc := chapterRe.FindStringIndex(text); loc != nil && loc[0] < 50000 {
		text = text[loc[0]:]
	}
	text = illustrationRe.ReplaceAllString(text, "")
	text = multiBlankRe.ReplaceAllString(text, "\n\n")

	body := reflow(strings.TrimSpace(text))
	if limit > 0 && len(body) > limit {
		body = cutAtSentenceEnd(body, limit)
	}
	return body
}

// reflow joins hard-wrapped lines into one line per paragraph.
func reflow(text string) string {
	var (
		result    []string
		paragraph strings.Builder
	)
	flush := func() {
		if paragraph.Len() > 0 {
			result = append(result, paragraph.String())
			paragraph.Reset()
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		if isChapterHeader(line) {
			flush()
			result = append(result, line)
			continue
		}
		if paragraph.Len() > 0 {
			paragraph.WriteByte(' ')
		}
		paragraph.WriteString(line)
	}
	flush()

	return strings.Join(result, "\n\n")
}

func isChapterHeader(line string) bool {
	if strings.HasPrefix(line, "CHAPTER ") || strings.HasPrefix(line, "Chapter ") {
		return true
	}
	return romanRe.MatchString(line)
}

// cutAtSentenceEnd truncates body at the first terminator followed by
// whitespace within 1000 bytes after limit.
func cutAtSentenceEnd(body string, limit int) string {
	for i := limit; i < len(body)-1 && i < limit+1000; i++ {
		switch body[i] {
		case '.', '!', '?':
			if body[i+1] == ' ' || body[i+1] == '\n' {
				return body[:i+1]
			}
		}
	}
	return body
}

// DraftGold segments each blank-line separated paragraph of body so the
// result can be corrected by hand into a gold file. Nothing is dropped.
func DraftGold(body string) [][]string {
	seg := sbd.New(sbd.WithMinLength(0))

	var paragraphs [][]string
	for _, para := range strings.Split(body, "\n\n") {
		if sentences := seg.SegmentText(para); len(sentences) > 0 {
			paragraphs = append(paragraphs, sentences)
		}
	}
	return paragraphs
}

// WriteGold writes a corpus file: the header comments, a blank line, then one
// sentence per line with a blank line between paragraphs. Sentences must not
// contain newlines; any are folded into spaces.
func WriteGold(w io.Writer, h Header, paragraphs [][]string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# Source: %s\n", h.Source)
	if h.Author != "" {
		fmt.Fprintf(bw, "# Author: %s\n", h.Author)
	}
	if h.Title != "" {
		fmt.Fprintf(bw, "# Title: %s\n", h.Title)
	}

	for _, para := range paragraphs {
		bw.WriteString("\n")
		for _, sentence := range para {
			bw.WriteString(strings.Join(strings.Fields(sentence), " "))
			bw.WriteString("\n")
		}
	}
	return bw.Flush()
}
