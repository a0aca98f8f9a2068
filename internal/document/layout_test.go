package document

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"psiquitools/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallPage fits lines at y=1..8: the cursor passes the bottom (8) on the ninth line.
var smallPage = Geometry{
	PageWidth:    24,
	PageHeight:   10,
	MarginTop:    1,
	MarginLeft:   2,
	MarginBottom: 2,
	LineHeight:   1,
}

// oneLine never wraps.
var oneLine = WrapFunc(func(_ Style, text string, _ float64) []string {
	return []string{text}
})

func bodyBlocks(n int) *Document {
	doc := &Document{Title: "test"}
	for i := 0; i < n; i++ {
		doc.Add(Block{Text: strings.Repeat("x", i%5+1)})
	}
	return doc
}

func TestPaginate_BreaksPastBottom(t *testing.T) {
	layout := Paginate(smallPage, oneLine, bodyBlocks(20))

	require.Len(t, layout.Pages, 3)
	assert.Len(t, layout.Pages[0].Lines, 8)
	assert.Len(t, layout.Pages[1].Lines, 8)
	assert.Len(t, layout.Pages[2].Lines, 4)

	for i, p := range layout.Pages {
		assert.Equal(t, i+1, p.Number)
		assert.Equal(t, smallPage.MarginTop, p.Lines[0].Y, "page %d must start at the top margin", p.Number)
		for _, l := range p.Lines {
			assert.LessOrEqual(t, l.Y, smallPage.Bottom())
		}
	}
}

func TestPaginate_SingleBlockSpansPages(t *testing.T) {
	words := strings.TrimSpace(strings.Repeat("word ", 30))
	layout := Paginate(smallPage, NewText(smallPage), &Document{Blocks: []Block{{Text: words}}})

	total := 0
	for _, p := range layout.Pages {
		total += len(p.Lines)
	}
	// 20 columns hold four words per line
	assert.Equal(t, 8, total)
	assert.Len(t, layout.Pages, 1)

	long := strings.TrimSpace(strings.Repeat("word ", 60))
	layout = Paginate(smallPage, NewText(smallPage), &Document{Blocks: []Block{{Text: long}}})
	require.Len(t, layout.Pages, 2)
	assert.Len(t, layout.Pages[1].Lines, 7)
}

func TestPaginate_SpaceAfterAndNewlines(t *testing.T) {
	doc := &Document{}
	doc.Add(Block{Style: StyleHeading, Text: "Heading", SpaceAfter: 2})
	doc.Add(Block{Text: "first\nsecond"})

	layout := Paginate(smallPage, oneLine, doc)
	lines := layout.Pages[0].Lines
	require.Len(t, lines, 3)
	assert.Equal(t, 1.0, lines[0].Y)
	assert.Equal(t, 4.0, lines[1].Y)
	assert.Equal(t, "second", lines[2].Text)
	assert.Equal(t, 5.0, lines[2].Y)
}

func TestPaginate_EmptyDocumentHasOnePage(t *testing.T) {
	layout := Paginate(smallPage, oneLine, &Document{})
	require.Len(t, layout.Pages, 1)
	assert.Empty(t, layout.Pages[0].Lines)
}

func TestGeometry(t *testing.T) {
	g := GeometryFromConfig(config.DefaultConfig().Document)
	assert.Equal(t, 170.0, g.UsableWidth())
	assert.Equal(t, 277.0, g.Bottom())
	assert.Equal(t, 287.0, g.Footer())

	g.FooterY = 290
	assert.Equal(t, 290.0, g.Footer())

	w, h := PageDimensions("Letter")
	assert.InDelta(t, 215.9, w, 0.001)
	assert.InDelta(t, 279.4, h, 0.001)
}

func TestWrapColumns(t *testing.T) {
	lines := WrapColumns("the quick brown fox jumps", 10)
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), 10)
	}
	assert.Equal(t, "the quick", lines[0])

	lines = WrapColumns("supercalifragilistic", 8)
	assert.Equal(t, []string{"supercal", "ifragili", "stic"}, lines)

	assert.Nil(t, WrapColumns("   ", 10))
}

func TestTextRenderer(t *testing.T) {
	doc := bodyBlocks(20)
	doc.Footer = "psiqui.tools"

	var buf bytes.Buffer
	require.NoError(t, NewText(smallPage).Render(&buf, doc))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "\f"))
	assert.True(t, strings.HasSuffix(out, "  psiqui.tools\n"))

	// Centered title
	buf.Reset()
	title := &Document{Blocks: []Block{{Style: StyleTitle, Align: AlignCenter, Text: "exam"}}}
	require.NoError(t, NewText(smallPage).Render(&buf, title))
	assert.Contains(t, buf.String(), strings.Repeat(" ", 10)+"EXAM")
}

func TestPDFRenderer(t *testing.T) {
	doc := bodyBlocks(80)
	doc.Title = "Timeline"
	doc.Footer = "psiqui.tools"
	doc.Blocks[0] = Block{Style: StyleTitle, Align: AlignCenter, Text: "Examen – evolución"}

	var buf bytes.Buffer
	require.NoError(t, NewPDF(config.DefaultConfig().Document).Render(&buf, doc))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestLatin1(t *testing.T) {
	assert.Equal(t, "a - b 'c' \"d\" .", latin1("a – b ‘c’ “d” …"))
	assert.Equal(t, "evolución ?", latin1("evolución 中"))
}

func TestForPath(t *testing.T) {
	c := config.DefaultConfig().Document

	r, err := ForPath("out.PDF", c)
	require.NoError(t, err)
	assert.IsType(t, &PDF{}, r)

	r, err = ForPath("out.txt", c)
	require.NoError(t, err)
	assert.IsType(t, &Text{}, r)

	r, err = ForPath("out.md", c)
	require.NoError(t, err)
	assert.IsType(t, Markdown{}, r)

	_, err = ForPath("out.docx", c)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "doc.txt")
	doc := &Document{Title: "t", Blocks: []Block{{Text: "hello"}}}

	require.NoError(t, WriteFile(path, config.DefaultConfig().Document, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestToMarkdown(t *testing.T) {
	doc := &Document{Footer: "psiqui.tools"}
	doc.Add(Block{Style: StyleTitle, Text: "Title"}).
		Add(Block{Style: StyleHeading, Text: "Section"}).
		Add(Block{Style: StyleLabel, Text: "Label"}).
		Add(Block{Style: StyleCaption, Text: "caption"}).
		Add(Block{Text: "one\ntwo"}).
		Add(Block{Text: "   "})

	md := ToMarkdown(doc)
	assert.Equal(t, "# Title\n\n## Section\n\n**Label**\n\n_caption_\n\none  \ntwo\n\n---\n\n_psiqui.tools_\n", md)

	out, err := Preview(doc, 60)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
}
