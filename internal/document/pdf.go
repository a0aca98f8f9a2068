package document

import (
	"io"
	"strings"

	"psiquitools/internal/config"

	"github.com/go-pdf/fpdf"
)

const pdfFont = "Helvetica"

// PDF renders documents with the core Helvetica font. Text is translated from
// UTF-8 to cp1252, so characters outside Latin-1 are approximated.
type PDF struct {
	Geometry Geometry
	PageSize string
	FontSize float64
}

// NewPDF returns a PDF renderer for the configured page geometry.
func NewPDF(c config.DocumentConfig) *PDF {
	size := "A4"
	if strings.EqualFold(c.PageSize, "letter") {
		size = "Letter"
	}
	return &PDF{
		Geometry: GeometryFromConfig(c),
		PageSize: size,
		FontSize: c.FontSize,
	}
}

// Render paginates doc and writes it as a PDF.
func (r *PDF) Render(w io.Writer, doc *Document) error {
	g := r.Geometry

	pdf := fpdf.New("P", "mm", r.PageSize, "")
	pdf.SetMargins(g.MarginLeft, g.MarginTop, g.MarginLeft)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("psiquitools", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// SplitText measures with the current font, so set it per style first
	wrap := WrapFunc(func(style Style, text string, width float64) []string {
		r.setFont(pdf, style)
		return pdf.SplitText(latin1(text), width)
	})
	layout := Paginate(g, wrap, doc)

	for _, p := range layout.Pages {
		pdf.AddPage()
		for _, line := range p.Lines {
			r.setFont(pdf, line.Style)
			text := tr(line.Text)
			x := line.X
			if line.Align == AlignCenter {
				x = (g.PageWidth - pdf.GetStringWidth(text)) / 2
			}
			pdf.Text(x, line.Y, text)
		}
	}

	if layout.Footer != "" {
		pdf.SetFont(pdfFont, "", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.Text(g.MarginLeft, g.Footer(), tr(layout.Footer))
	}

	return pdf.Output(w)
}

func (r *PDF) setFont(pdf *fpdf.Fpdf, style Style) {
	size := r.FontSize
	if size <= 0 {
		size = 11
	}
	switch style {
	case StyleTitle:
		pdf.SetFont(pdfFont, "B", size+5)
		pdf.SetTextColor(30, 41, 59)
	case StyleHeading, StyleLabel:
		pdf.SetFont(pdfFont, "B", size)
		pdf.SetTextColor(30, 41, 59)
	case StyleCaption:
		pdf.SetFont(pdfFont, "", size-1)
		pdf.SetTextColor(100, 116, 139)
	default:
		pdf.SetFont(pdfFont, "", size)
		pdf.SetTextColor(51, 65, 85)
	}
}

// latin1 replaces runes the core fonts cannot measure.
// Common typographic punctuation is mapped to ASCII first.
func latin1(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '–', '—', '−':
			return '-'
		case '‘', '’':
			return '\''
		case '“', '”':
			return '"'
		case '…':
			return '.'
		case '\t':
			return ' '
		}
		if r > 0xff || (r >= 0x80 && r < 0xa0) {
			return '?'
		}
		return r
	}, s)
}
