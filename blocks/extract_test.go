package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace",
			input: "  \n\t",
			want:  nil,
		},
		{
			name:  "paragraph and div",
			input: "<p>First sentence. Second sentence.</p><div>Third.</div>",
			want:  []string{"First sentence. Second sentence.", "Third."},
		},
		{
			name:  "plain text falls back to one block",
			input: "Just some text. Nothing else.",
			want:  []string{"Just some text. Nothing else."},
		},
		{
			name:  "inline emphasis kept",
			input: "<p>This is <b>bold</b>, <em>emphasised</em> and <a href='#'>linked</a>.</p>",
			want:  []string{"This is bold, emphasised and linked."},
		},
		{
			name:  "nested inline kept",
			input: "<p>A <span>deeply <i>nested <b>word</b></i></span> here.</p>",
			want:  []string{"A deeply nested word here."},
		},
		{
			name:  "nested block not duplicated",
			input: "<div>Outer text. <p>Inner text.</p> More outer.</div>",
			want:  []string{"Outer text.  More outer.", "Inner text."},
		},
		{
			name:  "block inside inline not duplicated",
			input: "<div>Before <span>span <p>para inside.</p></span> after.</div>",
			want:  []string{"Before span  after.", "para inside."},
		},
		{
			name:  "headings and list items",
			input: "<h1>Title</h1><ul><li>One item.</li><li>Two item.</li></ul><h2>Sub</h2>",
			want:  []string{"Title", "One item.", "Two item.", "Sub"},
		},
		{
			name:  "table cells",
			input: "<table><tr><th>Name</th><td>Value here.</td></tr></table>",
			want:  []string{"Name", "Value here."},
		},
		{
			name:  "blockquote",
			input: "<blockquote>Quoted words.</blockquote>",
			want:  []string{"Quoted words."},
		},
		{
			name:  "line breaks become spaces",
			input: "<p>Line one<br>line two.</p>",
			want:  []string{"Line one line two."},
		},
		{
			name:  "empty blocks dropped",
			input: "<p>  </p><div><p>Kept.</p></div><p></p>",
			want:  []string{"Kept."},
		},
		{
			name:  "script and style ignored",
			input: "<head><title>T</title><style>p{}</style></head><body><script>var x = 1;</script><p>Visible.</p></body>",
			want:  []string{"Visible."},
		},
		{
			name:  "script ignored in fallback",
			input: "<body>Visible text.<script>alert('x')</script></body>",
			want:  []string{"Visible text."},
		},
		{
			name:  "non-inline element text not owned by block",
			input: "<p>Run <code>make</code> now.</p>",
			want:  []string{"Run  now."},
		},
		{
			name:  "malformed markup",
			input: "<p>Unclosed <b>bold <div>Another",
			want:  []string{"Unclosed bold", "Another"},
		},
		{
			name:  "entities decoded",
			input: "<p>Fish &amp; chips.</p>",
			want:  []string{"Fish & chips."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.input))
		})
	}
}

func TestExtractBlocks_Tags(t *testing.T) {
	got := ExtractBlocks("<h3>Head</h3><p>Body text.</p><li>Item</li>")
	require.Len(t, got, 3)
	assert.Equal(t, Block{Tag: "h3", Text: "Head"}, got[0])
	assert.Equal(t, Block{Tag: "p", Text: "Body text."}, got[1])
	assert.Equal(t, Block{Tag: "li", Text: "Item"}, got[2])
}

func TestExtractBlocks_Fallback(t *testing.T) {
	got := ExtractBlocks("<section>Loose <b>text</b>.</section>")
	require.Len(t, got, 1)
	assert.Equal(t, Block{Tag: "body", Text: "Loose text."}, got[0])
}

func TestExtract_DocumentOrder(t *testing.T) {
	doc := `<div>A1.<div>B1.<p>C1.</p>B2.</div><p>D1.</p></div><p>E1.</p>`
	assert.Equal(t, []string{"A1.", "B1.B2.", "C1.", "D1.", "E1."}, Extract(doc))
}

// Text on both sides of a nested block belongs to the outer block and comes
// out before the nested one.
func TestExtract_OuterTextBeforeNested(t *testing.T) {
	doc := `<div>Outer text here. <p>Inner para here.</p> Tail text here.</div>`
	got := ExtractBlocks(doc)
	require.Len(t, got, 2)
	assert.Equal(t, Block{Tag: "div", Text: "Outer text here.  Tail text here."}, got[0])
	assert.Equal(t, Block{Tag: "p", Text: "Inner para here."}, got[1])
}
