package ui

import (
	"strings"

	"psiquitools/internal/toolkit"

	"github.com/charmbracelet/lipgloss"
	reflowtruncate "github.com/muesli/reflow/truncate"
)

// ToolTable renders the toolkit as command, title and description columns.
// The description is cut to keep each row within Width.
type ToolTable struct {
	Title string
	Tools []toolkit.Tool
	// Width is the row budget in cells; 0 leaves descriptions whole.
	Width int
}

// NewToolTable lists tools under title.
func NewToolTable(title string, tools []toolkit.Tool, width int) *ToolTable {
	return &ToolTable{Title: title, Tools: tools, Width: width}
}

var toolHeaders = [3]string{"Command", "Tool", "Description"}

// minDescription keeps a few words of description on narrow terminals.
const minDescription = 12

func (t *ToolTable) cells(tool toolkit.Tool) [3]string {
	return [3]string{"psiq " + tool.Command, tool.Title, tool.Description}
}

// View renders the table, or "" when there are no tools.
func (t *ToolTable) View(styles Styles) string {
	if len(t.Tools) == 0 {
		return ""
	}

	var widths [3]int
	for i, h := range toolHeaders {
		widths[i] = lipgloss.Width(h)
	}
	for _, tool := range t.Tools {
		for i, c := range t.cells(tool) {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}

	// two cells of padding per column, one separator between columns
	fixed := widths[0] + widths[1] + 4 + 2
	if t.Width > 0 {
		widths[2] = min(widths[2], max(t.Width-fixed-2, minDescription))
	}

	head := styles.Bold.Copy().Padding(0, 1)
	body := styles.Body.Copy().Padding(0, 1)
	sep := styles.Muted.Render("|")

	row := func(style lipgloss.Style, cells [3]string) string {
		cells[2] = reflowtruncate.StringWithTail(cells[2], uint(widths[2]), "…")
		out := make([]string, len(cells))
		for i, c := range cells {
			out[i] = style.Width(widths[i] + 2).Render(c)
		}
		return strings.Join(out, sep)
	}

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title) + "\n")
	}
	sb.WriteString(row(head, toolHeaders) + "\n")
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", fixed+widths[2]+2)) + "\n")
	for _, tool := range t.Tools {
		sb.WriteString(row(body, t.cells(tool)) + "\n")
	}
	sb.WriteString("\n")
	return sb.String()
}
