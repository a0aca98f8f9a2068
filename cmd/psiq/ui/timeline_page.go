package ui

import (
	"errors"
	"path/filepath"
	"strings"

	"psiquitools/internal/document"
	"psiquitools/internal/timeline"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TimelinePage lists dated antecedents and edits them through one form.
type TimelinePage struct {
	env     *Env
	manager *timeline.Manager
	cursor  int

	date        textinput.Model
	description textinput.Model
	formOpen    bool

	// pending is the event awaiting delete confirmation.
	pending string

	status  string
	failed  bool
	export  exportPrompt
	preview previewPane

	width int
}

// NewTimelinePage edits m, or an empty timeline when nil.
func NewTimelinePage(env *Env, m *timeline.Manager) *TimelinePage {
	if m == nil {
		m = timeline.NewManager()
	}

	date := textinput.New()
	date.Prompt = "Date: "
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = 10
	date.Width = 12

	desc := textinput.New()
	desc.Prompt = "Description: "
	desc.Placeholder = "Event or antecedent"
	desc.CharLimit = 500
	desc.Width = 60

	return &TimelinePage{
		env:         env,
		manager:     m,
		date:        date,
		description: desc,
		export:      newExportPrompt("timeline.pdf"),
		preview:     newPreviewPane(),
	}
}

// Manager returns the timeline being edited.
func (p *TimelinePage) Manager() *timeline.Manager { return p.manager }

func (p *TimelinePage) Title() string { return "Psychiatric timeline" }

func (p *TimelinePage) Capturing() bool {
	return p.formOpen || p.pending != "" || p.export.active || p.preview.active
}

func (p *TimelinePage) SetSize(width, height int) {
	p.width = width
	p.preview.setSize(width, height)
}

func (p *TimelinePage) Help() []key.Binding {
	switch {
	case p.pending != "":
		return []key.Binding{keys.Confirm, keys.Deny}
	case p.formOpen:
		return []key.Binding{keys.NextStep, keys.Back}
	}
	return []key.Binding{keys.Up, keys.Down, keys.New, keys.Edit, keys.Delete, keys.Preview, keys.Export}
}

func (p *TimelinePage) selected() (timeline.Event, bool) {
	events := p.manager.DisplayOrder()
	if p.cursor < 0 || p.cursor >= len(events) {
		return timeline.Event{}, false
	}
	return events[p.cursor], true
}

func (p *TimelinePage) setStatus(text string, failed bool) {
	p.status, p.failed = text, failed
}

func (p *TimelinePage) Update(msg tea.Msg) (Page, tea.Cmd) {
	if m, ok := msg.(exportedMsg); ok {
		p.export.finish(m)
		return p, nil
	}
	if p.preview.active {
		return p, p.preview.update(msg)
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case p.pending != "":
		p.updateConfirm(k)
		return p, nil
	case p.export.active:
		path, cmd := p.export.update(k)
		if path != "" {
			return p, p.exportCmd(path)
		}
		return p, cmd
	case p.formOpen:
		return p, p.updateForm(k)
	}

	switch {
	case key.Matches(k, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(k, keys.Down):
		if p.cursor < p.manager.Len()-1 {
			p.cursor++
		}
	case key.Matches(k, keys.New):
		p.manager.CancelEdit()
		return p, p.openForm()
	case key.Matches(k, keys.Edit):
		if ev, ok := p.selected(); ok {
			_ = p.manager.Edit(ev.ID)
			return p, p.openForm()
		}
	case key.Matches(k, keys.Delete):
		if ev, ok := p.selected(); ok {
			p.pending = ev.ID
		}
	case key.Matches(k, keys.Preview):
		if doc := p.Document(); doc != nil {
			p.preview.show(doc, p.env.Config.UI.WordWrap)
		} else {
			p.setStatus("Nothing to preview yet.", true)
		}
	case key.Matches(k, keys.Export):
		if p.manager.Len() == 0 {
			p.setStatus("Add at least one event before exporting.", true)
			return p, nil
		}
		return p, p.export.open()
	}
	return p, nil
}

func (p *TimelinePage) updateConfirm(k tea.KeyMsg) {
	id := p.pending
	p.pending = ""
	if !key.Matches(k, keys.Confirm) {
		return
	}
	if p.manager.Delete(id, timeline.Always) {
		p.setStatus("Event deleted.", false)
		if p.cursor >= p.manager.Len() && p.cursor > 0 {
			p.cursor--
		}
	}
}

func (p *TimelinePage) openForm() tea.Cmd {
	p.formOpen = true
	p.date.SetValue(p.manager.Form.Date)
	p.description.SetValue(p.manager.Form.Description)
	p.description.Blur()
	p.status = ""
	return p.date.Focus()
}

func (p *TimelinePage) closeForm() {
	p.formOpen = false
	p.date.Blur()
	p.description.Blur()
}

func (p *TimelinePage) updateForm(k tea.KeyMsg) tea.Cmd {
	switch k.Type {
	case tea.KeyEsc:
		p.manager.CancelEdit()
		p.closeForm()
		return nil
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		if p.date.Focused() {
			p.date.Blur()
			return p.description.Focus()
		}
		p.description.Blur()
		return p.date.Focus()
	case tea.KeyEnter:
		p.manager.Form.Date = p.date.Value()
		p.manager.Form.Description = p.description.Value()
		_, editing := p.manager.Editing()
		if _, err := p.manager.Submit(); err != nil {
			if errors.Is(err, timeline.ErrEmptyDate) || errors.Is(err, timeline.ErrEmptyDescription) {
				p.setStatus("", false)
				return nil
			}
			p.setStatus(err.Error(), true)
			return nil
		}
		if editing {
			p.setStatus("Event updated.", false)
		} else {
			p.setStatus("Event added.", false)
		}
		p.closeForm()
		return nil
	}

	var cmd tea.Cmd
	if p.date.Focused() {
		p.date, cmd = p.date.Update(k)
	} else {
		p.description, cmd = p.description.Update(k)
	}
	return cmd
}

// exportCmd writes a workbook for .xlsx paths and a document otherwise.
// Both read a copy taken here; the command runs off the update loop.
func (p *TimelinePage) exportCmd(path string) tea.Cmd {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		resolved := p.env.Config.ResolveOutput(path)
		m := p.manager.Snapshot()
		return func() tea.Msg {
			return exportedMsg{path: resolved, err: m.WriteWorkbook(resolved)}
		}
	}
	doc, err := p.manager.Document(p.env.Now(), p.env.Config.Document.FooterMark)
	if err != nil {
		return func() tea.Msg { return exportedMsg{path: path, err: err} }
	}
	return exportCmd(p.env, path, doc)
}

// Document returns the printable chronology, or nil when empty.
func (p *TimelinePage) Document() *document.Document {
	doc, err := p.manager.Document(p.env.Now(), p.env.Config.Document.FooterMark)
	if errors.Is(err, timeline.ErrNoEvents) {
		return nil
	}
	return doc
}

func (p *TimelinePage) View() string {
	if p.preview.active {
		return p.preview.view()
	}
	s := p.env.Styles

	var sb strings.Builder
	sb.WriteString(s.Title.Render(p.Title()))
	sb.WriteString("\n")

	if p.formOpen {
		heading := "New event"
		if _, editing := p.manager.Editing(); editing {
			heading = "Edit event"
		}
		sb.WriteString(s.Bold.Render(heading) + "\n")
		sb.WriteString(p.date.View() + "\n")
		sb.WriteString(p.description.View() + "\n\n")
	}

	events := p.manager.DisplayOrder()
	if len(events) == 0 {
		sb.WriteString(s.Muted.Render("No events yet. Press a to add one."))
		sb.WriteString("\n")
	}
	editingID, _ := p.manager.Editing()
	for i, ev := range events {
		date := ev.Time().Format(timeline.DisplayDateLayout)
		line := s.Badge.Render(date) + " " + s.Body.Render(ev.Description)
		if p.width > 20 {
			line = s.Badge.Render(date) + " " + s.Body.Render(truncate(ev.Description, p.width-16))
		}
		marker := "  "
		if i == p.cursor && !p.formOpen {
			marker = s.Cursor.Render("› ")
		}
		if ev.ID == editingID {
			line += " " + s.Info.Render("(editing)")
		}
		sb.WriteString(marker + line + "\n")
	}

	if p.pending != "" {
		if ev, ok := p.manager.Get(p.pending); ok {
			sb.WriteString("\n" + s.Warning.Render("Delete \""+ev.Description+"\"? (y/n)"))
		}
	}
	if p.status != "" {
		sb.WriteString("\n")
		if p.failed {
			sb.WriteString(s.Error.Render(p.status))
		} else {
			sb.WriteString(s.Success.Render(p.status))
		}
	}
	if v := p.export.view(s); v != "" {
		sb.WriteString("\n" + v)
	}
	return sb.String()
}

// truncate shortens s to n runes with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
