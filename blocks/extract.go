// Package blocks flattens an HTML document into the ordered text of its
// block-level elements. Plain text is accepted too and comes back as a
// single block.
package blocks

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Block is the text owned by one block-level element.
type Block struct {
	Tag  string // element name, or "body" for the fallback block
	Text string
}

var blockTags = map[atom.Atom]bool{
	atom.P:          true,
	atom.Div:        true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Li:         true,
	atom.Blockquote: true,
	atom.Td:         true,
	atom.Th:         true,
}

// inlineTags contribute their whole text to the enclosing block.
var inlineTags = map[atom.Atom]bool{
	atom.A:      true,
	atom.B:      true,
	atom.I:      true,
	atom.Em:     true,
	atom.Strong: true,
	atom.Span:   true,
	atom.U:      true,
	atom.Small:  true,
	atom.Sup:    true,
	atom.Sub:    true,
	atom.Mark:   true,
}

// skipTags are never read.
var skipTags = map[atom.Atom]bool{
	atom.Head:     true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
}

// Extract returns the trimmed, non-empty text of every block in document
// order. It never fails; input that cannot be parsed yields nil.
func Extract(doc string) []string {
	found := ExtractBlocks(doc)
	if len(found) == 0 {
		return nil
	}
	texts := make([]string, len(found))
	for i, b := range found {
		texts[i] = b.Text
	}
	return texts
}

// ExtractBlocks is like Extract but keeps the element name of each block.
func ExtractBlocks(doc string) []Block {
	if strings.TrimSpace(doc) == "" {
		return nil
	}
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil || root == nil {
		return nil
	}

	w := &walker{}
	w.walk(root)
	if w.sawBlock {
		return w.blocks
	}

	// No structure at all: the whole body is one block.
	body := findBody(root)
	if body == nil {
		body = root
	}
	var b strings.Builder
	collectText(&b, body, false)
	if text := strings.TrimSpace(b.String()); text != "" {
		return []Block{{Tag: "body", Text: text}}
	}
	return nil
}

type walker struct {
	blocks   []Block
	sawBlock bool
}

// walk visits blocks in pre-order. A block's own text is recorded before
// the blocks nested inside it, and nested block text is never folded into
// its ancestors.
func (w *walker) walk(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || skipTags[c.DataAtom] {
			continue
		}
		if blockTags[c.DataAtom] {
			w.sawBlock = true
			if text := strings.TrimSpace(directText(c)); text != "" {
				w.blocks = append(w.blocks, Block{Tag: c.Data, Text: text})
			}
		}
		w.walk(c)
	}
}

// directText returns the text nodes directly under n plus the full text of
// its inline emphasis children.
func directText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			b.WriteString(c.Data)
		case c.Type != html.ElementNode:
		case c.DataAtom == atom.Br:
			b.WriteByte(' ')
		case inlineTags[c.DataAtom]:
			collectText(&b, c, true)
		}
	}
	return b.String()
}

// collectText appends all text under n. With stopAtBlocks set, nested block
// elements are left out because they are emitted on their own.
func collectText(b *strings.Builder, n *html.Node, stopAtBlocks bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			b.WriteString(c.Data)
		case html.ElementNode:
			if skipTags[c.DataAtom] || (stopAtBlocks && blockTags[c.DataAtom]) {
				continue
			}
			if c.DataAtom == atom.Br {
				b.WriteByte(' ')
				continue
			}
			collectText(b, c, stopAtBlocks)
		}
	}
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}
