package ui

import (
	"fmt"
	"strconv"
	"strings"

	"psiquitools/internal/scales"
	"psiquitools/internal/toolkit"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ScalesPage is the scales index and, once a scale is opened, its sheet.
type ScalesPage struct {
	env    *Env
	scales []*scales.Scale
	cursor int

	sheet *scales.Sheet
	item  int

	width int
}

// NewScalesPage opens the scales index.
func NewScalesPage(env *Env) *ScalesPage {
	return &ScalesPage{env: env, scales: scales.Default().List()}
}

// NewScalePage opens a sheet for s directly.
func NewScalePage(env *Env, s *scales.Scale) *ScalesPage {
	p := NewScalesPage(env)
	for i, candidate := range p.scales {
		if candidate.ID == s.ID {
			p.cursor = i
		}
	}
	p.open(s)
	return p
}

func (p *ScalesPage) open(s *scales.Scale) {
	p.sheet = scales.NewSheet(s)
	p.sheet.Copied.ResetAfter = p.env.Config.GetClipboardReset()
	p.item = 0
}

// Sheet returns the open sheet, or nil on the index.
func (p *ScalesPage) Sheet() *scales.Sheet { return p.sheet }

func (p *ScalesPage) Title() string {
	if p.sheet != nil {
		return p.sheet.Scale.Name
	}
	return "Clinical scales"
}

func (p *ScalesPage) Capturing() bool { return p.sheet != nil }

func (p *ScalesPage) SetSize(width, _ int) { p.width = width }

func (p *ScalesPage) Help() []key.Binding {
	if p.sheet == nil {
		return []key.Binding{keys.Up, keys.Down, keys.Enter}
	}
	return []key.Binding{keys.Up, keys.Down, keys.Left, keys.Right, keys.Copy, keys.Reset}
}

func (p *ScalesPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case copyResultMsg:
		if msg.ok && p.sheet != nil {
			return p, markCopied(p.sheet.Copied, p.env.Now())
		}
		return p, nil
	case copyExpiredMsg:
		if p.sheet != nil {
			p.sheet.Copied.Expire(msg.generation)
		}
		return p, nil
	case tea.KeyMsg:
		if p.sheet == nil {
			return p, p.updateIndex(msg)
		}
		return p, p.updateSheet(msg)
	}
	return p, nil
}

func (p *ScalesPage) updateIndex(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, keys.Down):
		if p.cursor < len(p.scales)-1 {
			p.cursor++
		}
	case key.Matches(msg, keys.Enter):
		p.open(p.scales[p.cursor])
	}
	return nil
}

func (p *ScalesPage) updateSheet(msg tea.KeyMsg) tea.Cmd {
	items := p.sheet.Scale.Items
	switch {
	case key.Matches(msg, keys.Back):
		p.sheet = nil
	case key.Matches(msg, keys.Up):
		if p.item > 0 {
			p.item--
		}
	case key.Matches(msg, keys.Down):
		if p.item < len(items)-1 {
			p.item++
		}
	case key.Matches(msg, keys.Right):
		p.step(1)
	case key.Matches(msg, keys.Left):
		p.step(-1)
	case key.Matches(msg, keys.Copy):
		return copyCmd(p.env.Clipboard, p.sheet.Summary())
	case key.Matches(msg, keys.Reset):
		p.sheet.Reset()
	default:
		// 1..n picks the nth option of the focused item
		if n, err := strconv.Atoi(msg.String()); err == nil {
			opts := items[p.item].Options
			if n >= 1 && n <= len(opts) {
				_ = p.sheet.Select(items[p.item].ID, opts[n-1].Value)
			}
		}
	}
	return nil
}

// step moves the focused item's selection by delta options.
func (p *ScalesPage) step(delta int) {
	it := p.sheet.Scale.Items[p.item]
	idx := 0
	if v, ok := p.sheet.Value(it.ID); ok {
		for i, o := range it.Options {
			if o.Value == v {
				idx = i + delta
			}
		}
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(it.Options)-1 {
		idx = len(it.Options) - 1
	}
	_ = p.sheet.Select(it.ID, it.Options[idx].Value)
}

func (p *ScalesPage) View() string {
	if p.sheet == nil {
		return p.viewIndex()
	}
	return p.viewSheet()
}

func (p *ScalesPage) viewIndex() string {
	s := p.env.Styles
	var sb strings.Builder
	sb.WriteString(s.Title.Render("Clinical scales"))
	sb.WriteString("\n")
	for i, sc := range p.scales {
		marker := "  "
		name := s.Bold.Render(sc.Name)
		if i == p.cursor {
			marker = s.Cursor.Render("› ")
			name = s.Cursor.Render(sc.Name)
		}
		sb.WriteString(marker + name + "  " + s.Muted.Render(sc.Subtitle) + "\n")
		sb.WriteString("    " + s.Body.Render(sc.Description) + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render(toolkit.PrivacyNotice))
	return sb.String()
}

func (p *ScalesPage) viewSheet() string {
	s := p.env.Styles
	sc := p.sheet.Scale

	var sb strings.Builder
	sb.WriteString(s.Title.Render(sc.Name) + "  " + s.Subtitle.Render(sc.Subtitle))
	sb.WriteString("\n")
	if sc.Instructions != "" {
		sb.WriteString(s.Info.Render(wrapText(sc.Instructions, p.wrapWidth())) + "\n\n")
	}

	for i, it := range sc.Items {
		answer := "-"
		if v, ok := p.sheet.Value(it.ID); ok {
			answer = strconv.Itoa(v)
		}
		line := fmt.Sprintf("%d. %s", i+1, it.Prompt)
		if i == p.item {
			sb.WriteString(s.Cursor.Render("› "+line) + "  " + s.Bold.Render(answer) + "\n")
			sb.WriteString(p.viewOptions(it) + "\n")
		} else {
			sb.WriteString("  " + s.Body.Render(line) + "  " + s.Muted.Render(answer) + "\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(p.viewResult())
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render(wrapText(sc.Note, p.wrapWidth())))
	return sb.String()
}

func (p *ScalesPage) wrapWidth() int {
	if p.width > 10 && p.width-4 < p.env.Config.UI.WordWrap {
		return p.width - 4
	}
	return p.env.Config.UI.WordWrap
}

func (p *ScalesPage) viewOptions(it scales.Item) string {
	s := p.env.Styles
	current, answered := p.sheet.Value(it.ID)

	opts := make([]string, len(it.Options))
	for i, o := range it.Options {
		label := fmt.Sprintf("%d %s", o.Value, o.Label)
		if answered && o.Value == current {
			opts[i] = s.Selected.Render(label)
		} else {
			opts[i] = s.Option.Render(label)
		}
	}
	return lipgloss.NewStyle().PaddingLeft(4).Render(lipgloss.JoinVertical(lipgloss.Left, opts...))
}

func (p *ScalesPage) viewResult() string {
	s := p.env.Styles
	sc := p.sheet.Scale
	res := p.sheet.Result()

	band := 0
	for i, b := range sc.Bands {
		if b == res.Band {
			band = i
		}
	}
	color := SeverityColor(band, len(sc.Bands))

	lines := []string{
		s.Bold.Render("Total score  ") + lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("%d / %d", res.Total, sc.MaxScore())),
		"Severity: " + lipgloss.NewStyle().Foreground(color).Render(res.Band.Label),
		s.Body.Render(res.Band.Action),
	}
	if !res.Complete {
		lines = append(lines, s.Muted.Render(fmt.Sprintf("%d of %d items answered", res.Answered, len(sc.Items))))
	}
	if res.Advisory != nil {
		lines = append(lines, s.Notice.Render(s.Bold.Render(res.Advisory.Title)+"\n"+res.Advisory.Message))
	}
	if p.sheet.Copied.On() {
		lines = append(lines, s.Success.Render("Copied"))
	}
	return s.Card.Copy().BorderForeground(color).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
