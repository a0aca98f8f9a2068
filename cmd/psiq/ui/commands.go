package ui

import (
	"path/filepath"
	"strings"
	"time"

	"psiquitools/internal/clipboard"
	"psiquitools/internal/document"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// copyResultMsg reports a finished clipboard write.
type copyResultMsg struct{ ok bool }

// copyExpiredMsg turns a copied indicator off, unless a later copy superseded it.
type copyExpiredMsg struct{ generation int }

// exportedMsg reports a finished document export.
type exportedMsg struct {
	path string
	err  error
}

// copyCmd writes text to the clipboard off the update loop.
func copyCmd(w clipboard.Writer, text string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{ok: clipboard.Write(w, text)}
	}
}

// markCopied lights the indicator and schedules its expiry.
func markCopied(ind *clipboard.Indicator, now time.Time) tea.Cmd {
	gen := ind.Mark(now)
	return tea.Tick(ind.ResetAfter, func(time.Time) tea.Msg {
		return copyExpiredMsg{generation: gen}
	})
}

// exportCmd writes doc to path using the configured geometry.
func exportCmd(env *Env, path string, doc *document.Document) tea.Cmd {
	resolved := env.Config.ResolveOutput(path)
	return func() tea.Msg {
		return exportedMsg{path: resolved, err: document.WriteFile(resolved, env.Config.Document, doc)}
	}
}

// exportPrompt asks for a destination file.
type exportPrompt struct {
	input  textinput.Model
	active bool
	status string
	failed bool
}

func newExportPrompt(defaultName string) exportPrompt {
	ti := textinput.New()
	ti.Prompt = "Save to: "
	ti.Placeholder = defaultName
	ti.CharLimit = 256
	ti.Width = 50
	ti.SetValue(defaultName)
	return exportPrompt{input: ti}
}

func (p *exportPrompt) open() tea.Cmd {
	p.active = true
	p.status = ""
	p.input.CursorEnd()
	return p.input.Focus()
}

func (p *exportPrompt) close() {
	p.active = false
	p.input.Blur()
}

// update handles keys while the prompt is open. It returns the chosen path
// when the user confirms.
func (p *exportPrompt) update(msg tea.KeyMsg) (string, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		p.close()
		return "", nil
	case tea.KeyEnter:
		path := strings.TrimSpace(p.input.Value())
		if path == "" {
			return "", nil
		}
		p.close()
		return path, nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return "", cmd
}

// finish records the outcome of an export.
func (p *exportPrompt) finish(msg exportedMsg) {
	if msg.err != nil {
		p.status = "Export failed: " + msg.err.Error()
		p.failed = true
		return
	}
	p.status = "Saved " + filepath.Clean(msg.path)
	p.failed = false
}

func (p exportPrompt) view(s Styles) string {
	if p.active {
		return p.input.View()
	}
	if p.status == "" {
		return ""
	}
	if p.failed {
		return s.Error.Render(p.status)
	}
	return s.Success.Render(p.status)
}

// previewPane shows a rendered document in a scrollable viewport.
type previewPane struct {
	viewport viewport.Model
	active   bool
}

func newPreviewPane() previewPane {
	return previewPane{viewport: viewport.New(0, 0)}
}

func (p *previewPane) setSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
}

func (p *previewPane) show(doc *document.Document, wrap int) {
	content, err := document.Preview(doc, wrap)
	if err != nil {
		content = document.ToMarkdown(doc)
	}
	if p.viewport.Height <= 0 {
		p.setSize(wrap, 20)
	}
	p.viewport.SetContent(content)
	p.viewport.GotoTop()
	p.active = true
}

func (p *previewPane) update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && (k.Type == tea.KeyEsc || k.String() == "p") {
		p.active = false
		return nil
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

func (p previewPane) view() string {
	return p.viewport.View()
}
