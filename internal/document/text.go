package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// DefaultTextGeometry is an 80-column, 66-row page measured in characters.
var DefaultTextGeometry = Geometry{
	PageWidth:    84,
	PageHeight:   66,
	MarginTop:    1,
	MarginLeft:   2,
	MarginBottom: 3,
	LineHeight:   1,
}

// Text renders documents as plain UTF-8 text. Pages are separated by a form feed.
type Text struct {
	Geometry Geometry
}

// NewText returns a plain-text renderer for a character geometry.
func NewText(g Geometry) *Text {
	return &Text{Geometry: g}
}

// WrapColumns word-wraps text to width columns, hard-breaking words longer
// than a line.
func WrapColumns(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}
	wrapped := wrap.String(wordwrap.String(text, width), width)
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

// Wrap implements Wrapper for character geometries.
func (r *Text) Wrap(_ Style, text string, width float64) []string {
	return WrapColumns(text, int(width))
}

// Render paginates doc and writes it as text.
func (r *Text) Render(w io.Writer, doc *Document) error {
	g := r.Geometry
	layout := Paginate(g, r, doc)
	indent := strings.Repeat(" ", int(g.MarginLeft))

	var sb strings.Builder
	for i, p := range layout.Pages {
		if i > 0 {
			sb.WriteString("\f")
		}
		row := 0
		for _, line := range p.Lines {
			for ; row < int(line.Y); row++ {
				sb.WriteString("\n")
			}
			text := line.Text
			if line.Style == StyleTitle || line.Style == StyleHeading {
				text = strings.ToUpper(text)
			}
			pad := indent
			if line.Align == AlignCenter {
				if free := int(g.PageWidth) - ansi.PrintableRuneWidth(text); free > 0 {
					pad = strings.Repeat(" ", free/2)
				}
			}
			sb.WriteString(pad + text + "\n")
			row++
		}
		if i == len(layout.Pages)-1 && layout.Footer != "" {
			for ; row < int(g.Footer()); row++ {
				sb.WriteString("\n")
			}
			sb.WriteString(indent + layout.Footer + "\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("failed to write text document: %w", err)
	}
	return nil
}
