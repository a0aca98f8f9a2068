package ui

import (
	"fmt"
	"strings"

	"psiquitools/internal/history"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// HistoryPage walks the history wizard and edits one field at a time.
type HistoryPage struct {
	env    *Env
	wizard *history.Wizard
	field  int

	input   textarea.Model
	editing bool

	export  exportPrompt
	preview previewPane

	width, height int
}

// NewHistoryPage edits record, or a fresh one when nil.
func NewHistoryPage(env *Env, record *history.Record) *HistoryPage {
	if record == nil {
		record = history.NewRecord(env.Now())
	}
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(60)
	return &HistoryPage{
		env:     env,
		wizard:  history.NewWizard(record),
		input:   ta,
		export:  newExportPrompt("history.pdf"),
		preview: newPreviewPane(),
	}
}

// Record returns the record being edited.
func (p *HistoryPage) Record() *history.Record { return p.wizard.Record }

// Step returns the wizard position.
func (p *HistoryPage) Step() int { return p.wizard.Index() }

func (p *HistoryPage) focused() history.Field {
	f, _ := history.LookupField(p.wizard.Current().Fields[p.field])
	return f
}

func (p *HistoryPage) Title() string { return history.Title }

func (p *HistoryPage) Capturing() bool {
	return p.editing || p.export.active || p.preview.active
}

func (p *HistoryPage) SetSize(width, height int) {
	p.width, p.height = width, height
	p.preview.setSize(width, height)
	if width > 10 {
		p.input.SetWidth(min(width-6, 80))
	}
}

func (p *HistoryPage) Help() []key.Binding {
	if p.editing {
		return []key.Binding{keys.Back}
	}
	return []key.Binding{keys.NextStep, keys.PrevStep, keys.Up, keys.Down, keys.Edit, keys.Preview, keys.Export}
}

func (p *HistoryPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	if m, ok := msg.(exportedMsg); ok {
		p.export.finish(m)
		return p, nil
	}
	if p.preview.active {
		return p, p.preview.update(msg)
	}

	k, ok := msg.(tea.KeyMsg)
	if !ok {
		if p.editing {
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			return p, cmd
		}
		return p, nil
	}

	if p.export.active {
		path, cmd := p.export.update(k)
		if path != "" {
			return p, exportCmd(p.env, path, p.Record().Document())
		}
		return p, cmd
	}

	if p.editing {
		return p, p.updateEditing(k)
	}

	switch {
	case key.Matches(k, keys.NextStep):
		p.wizard.Next()
		p.field = 0
	case key.Matches(k, keys.PrevStep):
		p.wizard.Previous()
		p.field = 0
	case key.Matches(k, keys.Up):
		if p.field > 0 {
			p.field--
		}
	case key.Matches(k, keys.Down):
		if p.field < len(p.wizard.Current().Fields)-1 {
			p.field++
		}
	case key.Matches(k, keys.Edit):
		return p, p.startEditing()
	case key.Matches(k, keys.Preview):
		p.preview.show(p.Record().Document(), p.env.Config.UI.WordWrap)
	case key.Matches(k, keys.Export):
		return p, p.export.open()
	}
	return p, nil
}

func (p *HistoryPage) startEditing() tea.Cmd {
	f := p.focused()
	if f.ReadOnly {
		return nil
	}
	value, _ := p.Record().Get(f.Key)
	p.input.Placeholder = f.Label
	if f.Multiline {
		p.input.SetHeight(6)
	} else {
		p.input.SetHeight(1)
	}
	p.input.SetValue(value)
	p.editing = true
	return p.input.Focus()
}

// updateEditing commits on Esc, and on Enter for single-line fields.
func (p *HistoryPage) updateEditing(k tea.KeyMsg) tea.Cmd {
	f := p.focused()
	if k.Type == tea.KeyEsc || (k.Type == tea.KeyEnter && !f.Multiline) {
		_ = p.Record().Set(f.Key, p.input.Value())
		p.input.Blur()
		p.editing = false
		return nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(k)
	return cmd
}

func (p *HistoryPage) View() string {
	if p.preview.active {
		return p.preview.view()
	}

	s := p.env.Styles
	step := p.wizard.Current()

	var sb strings.Builder
	sb.WriteString(s.Muted.Render(fmt.Sprintf("Step %d of %d", p.wizard.Index()+1, len(history.Steps))))
	sb.WriteString("\n")
	sb.WriteString(s.Title.Render(step.Title))
	sb.WriteString("\n")
	if step.Notice != "" {
		sb.WriteString(s.Notice.Render(step.Notice))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for i, name := range step.Fields {
		f, _ := history.LookupField(name)
		value, _ := p.Record().Get(name)

		label := f.Label
		if f.ReadOnly {
			label += " (automatic)"
		}
		if i == p.field {
			sb.WriteString(s.Cursor.Render("› " + label))
		} else {
			sb.WriteString("  " + s.Bold.Render(label))
		}
		sb.WriteString("\n")

		switch {
		case i == p.field && p.editing:
			sb.WriteString(p.input.View())
		case strings.TrimSpace(value) == "":
			sb.WriteString("    " + s.Muted.Render(history.NotSpecified))
		default:
			sb.WriteString(s.Body.Copy().PaddingLeft(4).Render(wrapText(value, p.wrapWidth())))
		}
		sb.WriteString("\n")
	}

	nav := ""
	if !p.wizard.First() {
		nav += "‹ previous   "
	}
	if !p.wizard.Last() {
		nav += "next ›"
	}
	sb.WriteString("\n" + s.Muted.Render(nav))
	if v := p.export.view(s); v != "" {
		sb.WriteString("\n" + v)
	}
	return sb.String()
}

func (p *HistoryPage) wrapWidth() int {
	if p.width > 10 && p.width-8 < p.env.Config.UI.WordWrap {
		return p.width - 8
	}
	return p.env.Config.UI.WordWrap
}
