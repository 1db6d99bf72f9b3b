package publisher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func TestSegmentBlocks_SplitsHeadingsAndParagraphs(t *testing.T) {
	in := `<p>Intro paragraph.</p><h2>First Section</h2><p>Section body.</p><h3>Subsection</h3><p>More text.</p>`

	out := SegmentBlocks(in)
	blocks := strings.Split(out, "\n\n")
	require.Len(t, blocks, 5)
	assert.Equal(t, "<p>Intro paragraph.</p>", blocks[0])
	assert.Equal(t, "<h2>First Section</h2>", blocks[1])
	assert.Equal(t, "<h3>Subsection</h3>", blocks[3])
}

func TestSegmentBlocks_WrapsStrayText(t *testing.T) {
	in := `Some stray intro text<p>Real paragraph.</p>`

	out := SegmentBlocks(in)
	blocks := strings.Split(out, "\n\n")
	require.Len(t, blocks, 2)
	assert.Equal(t, "<p>Some stray intro text</p>", blocks[0])
	assert.Equal(t, "<p>Real paragraph.</p>", blocks[1])
}

func TestSegmentBlocks_NoBlockTagsAtAll(t *testing.T) {
	out := SegmentBlocks("just a bare sentence the model forgot to tag")
	assert.Equal(t, "<p>just a bare sentence the model forgot to tag</p>", out)
}

func TestSegmentBlocks_ContentPreserved(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "clean blocks", in: `<p>A</p><h2>B</h2><p>C</p>`},
		{name: "messy whitespace", in: "  <p>A</p>\n\n<h2>B</h2>  <p>C</p>\n"},
		{name: "inline markup survives", in: `<p>Use <code>go test</code> and <strong>read</strong> the docs.</p><h3>Next</h3><p>Done.</p>`},
		{name: "attributes on tags", in: `<h2 id="intro">Intro</h2><p class="lead">Lead text.</p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := SegmentBlocks(tt.in)
			assert.Equal(t, stripWhitespace(tt.in), stripWhitespace(out),
				"segmentation must preserve all non-whitespace content in order")
		})
	}
}

func TestSegmentBlocks_DoesNotSplitInsidePre(t *testing.T) {
	// <pre> must not be mistaken for <p>.
	in := `<p>Look:</p><pre>code here</pre>`

	out := SegmentBlocks(in)
	blocks := strings.Split(out, "\n\n")
	require.Len(t, blocks, 1)
	assert.Equal(t, in, blocks[0])
}

func TestSegmentBlocks_Empty(t *testing.T) {
	assert.Equal(t, "", SegmentBlocks(""))
	assert.Equal(t, "", SegmentBlocks("   \n  "))
}
