package document

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/jamesainslie/go-sbd/blocks"
)

// markdownBlocks parses a Markdown source and returns the text of each leaf
// block in document order. Headings, paragraphs and the text of list items and
// block quotes keep their inline content, code spans included. Code blocks are
// kept verbatim. Raw HTML blocks go through the HTML block extractor.
func markdownBlocks(source []byte) []string {
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	var out []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}

	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *gmast.Heading, *gmast.Paragraph, *gmast.TextBlock:
			var b strings.Builder
			writeInline(&b, node, source)
			add(b.String())
			return gmast.WalkSkipChildren, nil
		case *gmast.FencedCodeBlock, *gmast.CodeBlock:
			add(lineText(node, source))
			return gmast.WalkSkipChildren, nil
		case *gmast.HTMLBlock:
			raw := lineText(node, source)
			if node.HasClosure() {
				raw += string(node.ClosureLine.Value(source))
			}
			out = append(out, blocks.Extract(raw)...)
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})

	return out
}

// writeInline appends the text content of n's inline children to b.
func writeInline(b *strings.Builder, n gmast.Node, source []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *gmast.Text:
			b.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *gmast.String:
			b.Write(node.Value)
		case *gmast.AutoLink:
			b.Write(node.Label(source))
		case *gmast.RawHTML:
			// Inline tags only; the text around them is in sibling nodes.
		default:
			writeInline(b, c, source)
		}
	}
}

func lineText(n gmast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}
