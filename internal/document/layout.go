// Package document lays out text blocks onto fixed-size pages and renders the
// result as PDF, plain text or markdown. Every exporter in psiquitools goes
// through Paginate, so all documents share one pagination rule.
package document

import (
	"strings"

	"psiquitools/internal/logging"

	"go.uber.org/zap"
)

// Style selects the typeface treatment of a block.
type Style int

const (
	StyleBody Style = iota
	StyleTitle
	StyleHeading
	StyleLabel
	StyleCaption
)

// Align is the horizontal alignment of a block's lines.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Block is one paragraph of the document.
type Block struct {
	Style Style
	Align Align
	Text  string
	// SpaceAfter is extra vertical space after the block, in line heights.
	SpaceAfter float64
}

// Document is an ordered sequence of blocks with an optional footer mark
// printed on the final page.
type Document struct {
	Title  string
	Blocks []Block
	Footer string
}

// Add appends a block and returns the document for chaining.
func (d *Document) Add(b Block) *Document {
	d.Blocks = append(d.Blocks, b)
	return d
}

// Geometry describes a page and the cursor rules. Units are whatever the
// backend measures in (millimetres for PDF, columns/rows for text).
type Geometry struct {
	PageWidth    float64
	PageHeight   float64
	MarginTop    float64
	MarginLeft   float64
	MarginBottom float64
	LineHeight   float64
	// FooterY is the absolute baseline of the footer mark; zero places it
	// halfway into the bottom margin.
	FooterY float64
}

// UsableWidth is the text column width.
func (g Geometry) UsableWidth() float64 {
	return g.PageWidth - 2*g.MarginLeft
}

// Bottom is the cursor threshold past which a new page starts.
func (g Geometry) Bottom() float64 {
	return g.PageHeight - g.MarginBottom
}

// Footer returns the baseline of the footer mark.
func (g Geometry) Footer() float64 {
	if g.FooterY > 0 {
		return g.FooterY
	}
	return g.PageHeight - g.MarginBottom/2
}

// Wrapper splits text into lines no wider than width for a given style.
type Wrapper interface {
	Wrap(style Style, text string, width float64) []string
}

// WrapFunc adapts a plain function to Wrapper.
type WrapFunc func(style Style, text string, width float64) []string

func (f WrapFunc) Wrap(style Style, text string, width float64) []string {
	return f(style, text, width)
}

// Line is a positioned, wrapped line of text.
type Line struct {
	Text  string
	Style Style
	Align Align
	X     float64
	Y     float64
}

// Page holds the lines placed on one page.
type Page struct {
	Number int
	Lines  []Line
}

// Layout is a paginated document ready for a backend to draw.
type Layout struct {
	Geometry Geometry
	Pages    []Page
	Footer   string
}

// Paginate wraps each block to the usable width and places it line by line.
// Whenever the cursor has moved past the page bottom, the next line starts a
// fresh page at the top margin. Hard newlines inside a block start new lines.
func Paginate(g Geometry, w Wrapper, doc *Document) *Layout {
	layout := &Layout{Geometry: g, Footer: doc.Footer}
	page := Page{Number: 1}
	y := g.MarginTop

	for _, b := range doc.Blocks {
		for _, para := range strings.Split(b.Text, "\n") {
			lines := w.Wrap(b.Style, para, g.UsableWidth())
			if len(lines) == 0 {
				// Empty paragraphs still advance the cursor
				lines = []string{""}
			}
			for _, text := range lines {
				if y > g.Bottom() {
					layout.Pages = append(layout.Pages, page)
					page = Page{Number: page.Number + 1}
					y = g.MarginTop
				}
				page.Lines = append(page.Lines, Line{
					Text:  text,
					Style: b.Style,
					Align: b.Align,
					X:     g.MarginLeft,
					Y:     y,
				})
				y += g.LineHeight
			}
		}
		y += b.SpaceAfter * g.LineHeight
	}
	layout.Pages = append(layout.Pages, page)

	logging.Get(logging.CategoryDocument).Debug("paginated document",
		zap.String("title", doc.Title),
		zap.Int("blocks", len(doc.Blocks)),
		zap.Int("pages", len(layout.Pages)))

	return layout
}

// Text joins the lines of every page, one per row, for previews and tests.
func (l *Layout) Text() string {
	var sb strings.Builder
	for i, p := range l.Pages {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, line := range p.Lines {
			sb.WriteString(line.Text)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
