package sbd

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/jamesainslie/go-sbd/document"
)

func TestNew_Defaults(t *testing.T) {
	seg := New()
	require.NotNil(t, seg)
	assert.Equal(t, 3, seg.normalize.MinLength)
	assert.False(t, seg.normalize.ApplyForm)
	assert.Positive(t, seg.concurrency)
	assert.NotNil(t, seg.logger)
}

func TestNew_WithOptions(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	seg := New(
		WithMinLength(10),
		WithConcurrency(2),
		WithLogger(logger),
		WithUnicodeForm(norm.NFKC),
	)
	assert.Equal(t, 10, seg.normalize.MinLength)
	assert.Equal(t, 2, seg.concurrency)
	assert.Same(t, logger, seg.logger)
	assert.True(t, seg.normalize.ApplyForm)
	assert.Equal(t, norm.NFKC, seg.normalize.Form)
}

func TestNew_IgnoresInvalidOptions(t *testing.T) {
	seg := New(WithMinLength(-1), WithConcurrency(0), WithLogger(nil))
	assert.Equal(t, 3, seg.normalize.MinLength)
	assert.Positive(t, seg.concurrency)
	assert.NotNil(t, seg.logger)
}

func TestSegmenter_Segment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "title abbreviation",
			input: "Dr. Smith went home.",
			want:  []string{"Dr. Smith went home."},
		},
		{
			name:  "decimal",
			input: "The cost was $19.99 today.",
			want:  []string{"The cost was $19.99 today."},
		},
		{
			name:  "ellipsis and mixed marks",
			input: "Wait... really? Yes!",
			want:  []string{"Wait...", "really?", "Yes!"},
		},
		{
			name:  "closing quote",
			input: `He said "Hello." She left.`,
			want:  []string{`He said "Hello."`, "She left."},
		},
		{
			name:  "typographic quote after abbreviation",
			input: "<p>Mr.\u201d Smith left. He went.</p>",
			want:  []string{"Mr.\u201d Smith left.", "He went."},
		},
		{
			name:  "markup blocks in order",
			input: "<p>First sentence. Second sentence.</p><div>Third.</div>",
			want:  []string{"First sentence.", "Second sentence.", "Third."},
		},
		{
			name:  "nested inline not duplicated",
			input: "<div><p>Read <b>this</b> now.</p><p>And <i>that</i> too.</p></div>",
			want:  []string{"Read this now.", "And that too."},
		},
		{
			name:  "fragments dropped",
			input: "<ul><li>•</li><li>Real item here.</li></ul><p>12</p>",
			want:  []string{"Real item here."},
		},
		{
			name:  "whitespace collapsed",
			input: "<p>Spread\n   over\tlines.</p>",
			want:  []string{"Spread over lines."},
		},
		{
			name:  "empty",
			input: "",
			want:  []string{},
		},
		{
			name:  "whitespace only",
			input: "  \n\t  ",
			want:  []string{},
		},
		{
			name:  "empty markup",
			input: "<p></p><div> </div>",
			want:  []string{},
		},
	}

	seg := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seg.Segment(tt.input)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSegmenter_Segment_Idempotent(t *testing.T) {
	seg := New()
	sentence := "A single, well-formed sentence stays as it is."
	got := seg.Segment(sentence)
	require.Equal(t, []string{sentence}, got)
	assert.Equal(t, got, seg.Segment(got[0]))
}

func TestSegmenter_Segment_NoWordsDropped(t *testing.T) {
	inputs := []string{
		"Mr. Brown met Prof. Green at 4.30 p.m. on Oct. 3rd. They talked! Did they agree? Not quite...",
		"Chapter 1\n\nIt was a dark night. The wind howled.\nNobody slept.",
		`"Run!" she cried. "Now?" he asked. Yes.`,
	}
	seg := New(WithMinLength(0))
	for _, in := range inputs {
		got := seg.Segment(in)
		assert.Equal(t, strings.Fields(in), strings.Fields(strings.Join(got, " ")), "input %q", in)
	}
}

func TestSegmenter_SegmentText_IgnoresMarkup(t *testing.T) {
	seg := New()
	got := seg.SegmentText("Use <p> for paragraphs. Then &amp; escapes.")
	assert.Equal(t, []string{"Use <p> for paragraphs.", "Then &amp; escapes."}, got)
}

func TestSegmenter_SegmentTextWithBoundaries(t *testing.T) {
	seg := New()
	text := "Hello world. Ok. How are you?\nFine thanks"
	sentences, boundaries := seg.SegmentTextWithBoundaries(text)

	require.Equal(t, []string{"Hello world.", "How are you?", "Fine thanks"}, sentences)
	require.Len(t, boundaries, len(sentences))
	assert.Equal(t, 12, boundaries[0])
	assert.Equal(t, strings.Index(text, "?")+1, boundaries[1])
	assert.Equal(t, len(text), boundaries[2])
}

func TestSegmenter_Blocks(t *testing.T) {
	seg := New()
	got := seg.Blocks("<h1>Title</h1><p>Body. More.</p>")
	assert.Equal(t, []string{"Title", "Body. More."}, got)
}

func TestSegmenter_IsComplete(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"   ", false},
		{"Hello world.", true},
		{"Hello world", false},
		{"Is it done?  ", true},
		{"One. Two", false},
		{"Talk to Dr.", true},
		{"Talk to Dr. Smith", false},
		{`He said "Stop."`, true},
	}
	seg := New()
	for _, tt := range tests {
		assert.Equal(t, tt.want, seg.IsComplete(tt.input), "input %q", tt.input)
	}
}

func TestSegmenter_UnicodeForm(t *testing.T) {
	seg := New(WithUnicodeForm(norm.NFC))
	got := seg.Segment("<p>Cafe\u0301 society.</p>")
	assert.Equal(t, []string{"Caf\u00e9 society."}, got)
}

func TestSegmenter_LogsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	seg := New(WithLogger(logger))

	seg.Segment("<p>One sentence. Hi.</p>")
	out := buf.String()
	assert.Contains(t, out, "segmented document")
	assert.Contains(t, out, "blocks=1")
	assert.Contains(t, out, "sentences=1")
	assert.Contains(t, out, "dropped=1")
}

func TestSegmenter_SegmentFile(t *testing.T) {
	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "ch1.html")
	textPath := filepath.Join(dir, "ch2.txt")
	mdPath := filepath.Join(dir, "ch3.md")
	require.NoError(t, os.WriteFile(htmlPath, []byte("<p>From HTML. Really.</p>"), 0o644))
	require.NoError(t, os.WriteFile(textPath, []byte("A <tag> stays. Second line."), 0o644))
	require.NoError(t, os.WriteFile(mdPath, []byte("# Heading\n\nFrom *Markdown* here.\n"), 0o644))

	seg := New()

	got, err := seg.SegmentFile(htmlPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"From HTML.", "Really."}, got)

	got, err = seg.SegmentFile(textPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"A <tag> stays.", "Second line."}, got)

	got, err = seg.SegmentFile(mdPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"Heading", "From Markdown here."}, got)
}

func TestSegmenter_SegmentDocument_MarkdownCode(t *testing.T) {
	src := "# Title here\n\nUse the `grep` command now. Then stop.\n\n```\nrun this code please.\n```\n"
	doc, err := document.Read(strings.NewReader(src), document.FormatMarkdown)
	require.NoError(t, err)

	got := New().SegmentDocument(doc)
	assert.Equal(t, []string{
		"Title here",
		"Use the grep command now.",
		"Then stop.",
		"run this code please.",
	}, got)
}

func TestSegmenter_DocumentBlocks(t *testing.T) {
	seg := New()

	md, err := document.Read(strings.NewReader("# Title\n\nBody `x` here.\n"), document.FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, []string{"Title", "Body x here."}, seg.DocumentBlocks(md))

	html := &document.Document{Format: document.FormatHTML, Text: "<h1>Title</h1><p>Body.</p>"}
	assert.Equal(t, []string{"Title", "Body."}, seg.DocumentBlocks(html))

	text := &document.Document{Format: document.FormatText, Text: "Just <p> text."}
	assert.Equal(t, []string{"Just <p> text."}, seg.DocumentBlocks(text))
	assert.Empty(t, seg.DocumentBlocks(&document.Document{Text: "  \n"}))
}

// Split-off initials are shorter than the default minimum length, so the
// filter removes them.
func TestSegmenter_Segment_InitialsDropped(t *testing.T) {
	got := New().Segment("J. R. R. Tolkien wrote books. He died.")
	assert.Equal(t, []string{"Tolkien wrote books.", "He died."}, got)

	got = New(WithMinLength(0)).Segment("J. R. R. Tolkien wrote books. He died.")
	assert.Equal(t, []string{"J.", "R.", "R.", "Tolkien wrote books.", "He died."}, got)
}

func TestSegmenter_SegmentFile_Errors(t *testing.T) {
	seg := New()

	_, err := seg.SegmentFile(filepath.Join(t.TempDir(), "missing.html"))
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	_, err = seg.SegmentFile("book.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestSegmenter_SegmentAll(t *testing.T) {
	seg := New(WithConcurrency(3))

	docs := make([]string, 20)
	for i := range docs {
		docs[i] = fmt.Sprintf("<p>Chapter %d begins. It ends here.</p>", i)
	}

	results, err := seg.SegmentAll(context.Background(), docs)
	require.NoError(t, err)
	require.Len(t, results, len(docs))
	for i, got := range results {
		assert.Equal(t, []string{fmt.Sprintf("Chapter %d begins.", i), "It ends here."}, got)
	}
}

func TestSegmenter_SegmentAll_Empty(t *testing.T) {
	results, err := New().SegmentAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSegmenter_SegmentAll_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().SegmentAll(ctx, []string{"<p>Never read.</p>"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSegmenter_SegmentDocuments(t *testing.T) {
	docs := []*document.Document{
		{Format: document.FormatHTML, Text: "<p>Markup here. Yes.</p>"},
		{Format: document.FormatText, Text: "Plain <b> text."},
		{Format: document.FormatMarkdown, Blocks: []string{"Code `here` stays.", "Next block."}},
	}
	results, err := New().SegmentDocuments(context.Background(), docs)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Markup here.", "Yes."},
		{"Plain <b> text."},
		{"Code `here` stays.", "Next block."},
	}, results)
}

func TestSegmenter_ConcurrentUse(t *testing.T) {
	seg := New()
	doc := "<p>Dr. Who arrived. He left at 3.15 sharp! Why?</p>"
	want := seg.Segment(doc)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, seg.Segment(doc))
		}()
	}
	wg.Wait()
}
