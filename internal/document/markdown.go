package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders documents as markdown, one paragraph per block.
// It is not paginated; it feeds terminal previews and .md exports.
type Markdown struct{}

// Render writes doc as markdown.
func (Markdown) Render(w io.Writer, doc *Document) error {
	_, err := io.WriteString(w, ToMarkdown(doc))
	if err != nil {
		return fmt.Errorf("failed to write markdown document: %w", err)
	}
	return nil
}

// ToMarkdown converts a document to markdown source.
func ToMarkdown(doc *Document) string {
	var sb strings.Builder
	for _, b := range doc.Blocks {
		text := strings.TrimSpace(b.Text)
		if text == "" {
			continue
		}
		switch b.Style {
		case StyleTitle:
			sb.WriteString("# " + text)
		case StyleHeading:
			sb.WriteString("## " + text)
		case StyleLabel:
			sb.WriteString("**" + text + "**")
		case StyleCaption:
			sb.WriteString("_" + text + "_")
		default:
			// Hard line breaks inside a paragraph
			sb.WriteString(strings.ReplaceAll(text, "\n", "  \n"))
		}
		sb.WriteString("\n\n")
	}
	if doc.Footer != "" {
		sb.WriteString("---\n\n")
		sb.WriteString("_" + doc.Footer + "_\n")
	}
	return sb.String()
}

// Preview renders doc for the terminal using glamour.
func Preview(doc *Document, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create preview renderer: %w", err)
	}
	out, err := r.Render(ToMarkdown(doc))
	if err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return out, nil
}
