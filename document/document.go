// Package document loads source files and turns them into text the
// segmenter can read: HTML markup, Markdown blocks or plain text.
package document

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrNotFound indicates the document file does not exist.
	ErrNotFound = errors.New("document: file not found")

	// ErrUnsupportedFormat indicates the format cannot be read.
	ErrUnsupportedFormat = errors.New("document: unsupported format")
)

// Format is the source format of a document.
type Format int

const (
	FormatText Format = iota
	FormatHTML
	FormatMarkdown
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatHTML:
		return "html"
	case FormatMarkdown:
		return "markdown"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Document is a loaded source.
type Document struct {
	Path   string
	Format Format

	// Text is the decoded UTF-8 source.
	Text string

	// Blocks holds the block texts of a Markdown document, in order.
	Blocks []string
}

// IsMarkup reports whether Text is HTML that should go through block
// extraction.
func (d *Document) IsMarkup() bool {
	return d.Format == FormatHTML
}

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt", "plain":
		return FormatText, nil
	case "html", "htm", "xhtml":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// DetectFormat picks a format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".txt", ".text":
		return FormatText, nil
	case ".html", ".htm", ".xhtml":
		return FormatHTML, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// Load reads the file at path using the format implied by its extension.
func Load(path string) (*Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	return LoadAs(path, format)
}

// LoadAs reads the file at path as the given format.
func LoadAs(path string, format Format) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// Read decodes r as the given format.
func Read(r io.Reader, format Format) (*Document, error) {
	var (
		text string
		err  error
	)
	switch format {
	case FormatText, FormatMarkdown:
		text, err = readText(r)
	case FormatHTML:
		text, err = readHTML(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	doc := &Document{Format: format, Text: text}
	if format == FormatMarkdown {
		doc.Blocks = markdownBlocks([]byte(text))
	}
	return doc, nil
}

// readText honours a UTF-8 or UTF-16 byte order mark and assumes UTF-8
// without one.
func readText(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", fmt.Errorf("decoding text: %w", err)
	}
	return string(data), nil
}

// readHTML converts the document to UTF-8 using its BOM or <meta> charset.
func readHTML(r io.Reader) (string, error) {
	utf8Reader, err := charset.NewReader(r, "text/html")
	if err != nil {
		return "", fmt.Errorf("detecting charset: %w", err)
	}
	data, err := io.ReadAll(utf8Reader)
	if err != nil {
		return "", fmt.Errorf("decoding html: %w", err)
	}
	return string(data), nil
}
