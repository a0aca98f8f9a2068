package ui

import (
	"fmt"
	"strings"

	"psiquitools/internal/clipboard"
	"psiquitools/internal/mentalstatus"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MSEPage builds a mental status examination one section at a time.
type MSEPage struct {
	env  *Env
	exam *mentalstatus.Exam

	section int
	// row indexes the section's phrases; len(Phrases) is the free-text row.
	row int

	text    textinput.Model
	editing bool

	copied  *clipboard.Indicator
	export  exportPrompt
	preview previewPane

	width, height int
}

// NewMSEPage edits exam, or a fresh one when nil.
func NewMSEPage(env *Env, exam *mentalstatus.Exam) *MSEPage {
	if exam == nil {
		exam = mentalstatus.New()
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Additional observations"
	ti.CharLimit = 500
	ti.Width = 60
	return &MSEPage{
		env:     env,
		exam:    exam,
		text:    ti,
		copied:  clipboard.NewIndicator(env.Config.GetClipboardReset()),
		export:  newExportPrompt("mental-status.pdf"),
		preview: newPreviewPane(),
	}
}

// Exam returns the examination being edited.
func (p *MSEPage) Exam() *mentalstatus.Exam { return p.exam }

func (p *MSEPage) current() mentalstatus.Section {
	return mentalstatus.Sections[p.section]
}

func (p *MSEPage) Title() string { return mentalstatus.Title }

func (p *MSEPage) Capturing() bool {
	return p.editing || p.export.active || p.preview.active
}

func (p *MSEPage) SetSize(width, height int) {
	p.width, p.height = width, height
	p.preview.setSize(width, height)
}

func (p *MSEPage) Help() []key.Binding {
	return []key.Binding{keys.NextStep, keys.Up, keys.Down, keys.Toggle, keys.Copy, keys.Preview, keys.Export, keys.Reset}
}

func (p *MSEPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case copyResultMsg:
		if msg.ok {
			return p, markCopied(p.copied, p.env.Now())
		}
		return p, nil
	case copyExpiredMsg:
		p.copied.Expire(msg.generation)
		return p, nil
	case exportedMsg:
		p.export.finish(msg)
		return p, nil
	}

	if p.preview.active {
		return p, p.preview.update(msg)
	}

	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if p.export.active {
		path, cmd := p.export.update(k)
		if path != "" {
			return p, exportCmd(p.env, path, p.exam.Document())
		}
		return p, cmd
	}

	if p.editing {
		return p, p.updateText(k)
	}

	sec := p.current()
	switch {
	case key.Matches(k, keys.NextStep), key.Matches(k, keys.Right):
		p.moveSection(1)
	case key.Matches(k, keys.PrevStep), key.Matches(k, keys.Left):
		p.moveSection(-1)
	case key.Matches(k, keys.Up):
		if p.row > 0 {
			p.row--
		}
	case key.Matches(k, keys.Down):
		if p.row < len(sec.Phrases) {
			p.row++
		}
	case key.Matches(k, keys.Toggle):
		if p.row < len(sec.Phrases) {
			_ = p.exam.Toggle(sec.ID, sec.Phrases[p.row])
		}
	case key.Matches(k, keys.Edit):
		if p.row == len(sec.Phrases) {
			p.editing = true
			p.text.SetValue(p.exam.Text(sec.ID))
			p.text.CursorEnd()
			return p, p.text.Focus()
		}
		_ = p.exam.Toggle(sec.ID, sec.Phrases[p.row])
	case key.Matches(k, keys.Copy):
		return p, copyCmd(p.env.Clipboard, p.exam.Narrative())
	case key.Matches(k, keys.Preview):
		p.preview.show(p.exam.Document(), p.env.Config.UI.WordWrap)
	case key.Matches(k, keys.Export):
		return p, p.export.open()
	case key.Matches(k, keys.Reset):
		p.exam.Reset()
		p.copied.Clear()
	}
	return p, nil
}

func (p *MSEPage) updateText(k tea.KeyMsg) tea.Cmd {
	switch k.Type {
	case tea.KeyEsc:
		p.editing = false
		p.text.Blur()
		return nil
	case tea.KeyEnter:
		_ = p.exam.SetText(p.current().ID, p.text.Value())
		p.editing = false
		p.text.Blur()
		return nil
	}
	var cmd tea.Cmd
	p.text, cmd = p.text.Update(k)
	return cmd
}

func (p *MSEPage) moveSection(delta int) {
	n := len(mentalstatus.Sections)
	p.section = (p.section + delta + n) % n
	p.row = 0
}

func (p *MSEPage) View() string {
	if p.preview.active {
		return p.preview.view()
	}

	s := p.env.Styles
	sec := p.current()

	var sb strings.Builder
	sb.WriteString(s.Muted.Render(fmt.Sprintf("Section %d of %d", p.section+1, len(mentalstatus.Sections))))
	sb.WriteString("\n")
	sb.WriteString(s.Title.Render(sec.Title))
	sb.WriteString("\n")

	for i, phrase := range sec.Phrases {
		box := "[ ]"
		if p.exam.Selected(sec.ID, phrase) {
			box = s.Success.Render("[x]")
		}
		label := s.Body.Render(phrase)
		marker := "  "
		if i == p.row {
			marker = s.Cursor.Render("› ")
			label = s.Cursor.Render(phrase)
		}
		sb.WriteString(marker + box + " " + label + "\n")
	}

	marker := "  "
	if p.row == len(sec.Phrases) {
		marker = s.Cursor.Render("› ")
	}
	switch {
	case p.editing:
		sb.WriteString(marker + p.text.View() + "\n")
	case p.exam.Text(sec.ID) != "":
		sb.WriteString(marker + s.Info.Render(p.exam.Text(sec.ID)) + "\n")
	default:
		sb.WriteString(marker + s.Muted.Render("Other observations...") + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(s.RenderDivider(p.wrapWidth()))
	sb.WriteString("\n")
	narrative := p.exam.Narrative()
	if narrative == "" {
		sb.WriteString(s.Muted.Render(mentalstatus.NoData))
	} else {
		sb.WriteString(s.Body.Render(wrapText(narrative, p.wrapWidth())))
	}
	if p.copied.On() {
		sb.WriteString("\n" + s.Success.Render("Copied"))
	}
	if v := p.export.view(s); v != "" {
		sb.WriteString("\n" + v)
	}
	return sb.String()
}

func (p *MSEPage) wrapWidth() int {
	if p.width > 10 && p.width-4 < p.env.Config.UI.WordWrap {
		return p.width - 4
	}
	return p.env.Config.UI.WordWrap
}
