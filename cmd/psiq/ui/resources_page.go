package ui

import (
	"fmt"
	"strings"

	"psiquitools/internal/catalog"
	"psiquitools/internal/logging"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

// ResourcesPage browses the psychoeducation catalog.
type ResourcesPage struct {
	env     *Env
	search  textinput.Model
	results []catalog.Category
	view    viewport.Model

	width, height int
}

// NewResourcesPage opens the catalog filtered by query.
func NewResourcesPage(env *Env, query string) *ResourcesPage {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search resources"
	ti.CharLimit = 100
	ti.Width = 40
	ti.SetValue(query)

	p := &ResourcesPage{
		env:    env,
		search: ti,
		view:   viewport.New(env.Config.UI.WordWrap, 20),
	}
	p.refresh()
	return p
}

// Results returns the categories currently shown.
func (p *ResourcesPage) Results() []catalog.Category { return p.results }

// Query returns the current search text.
func (p *ResourcesPage) Query() string { return p.search.Value() }

func (p *ResourcesPage) Title() string { return "Psychoeducation resources" }

func (p *ResourcesPage) Capturing() bool { return p.search.Focused() }

func (p *ResourcesPage) SetSize(width, height int) {
	p.width, p.height = width, height
	if width > 0 {
		p.view.Width = width
	}
	if height > 3 {
		p.view.Height = height - 3
	}
	p.refresh()
}

func (p *ResourcesPage) Help() []key.Binding {
	if p.search.Focused() {
		return []key.Binding{keys.Enter, keys.Back}
	}
	return []key.Binding{keys.Search, keys.Up, keys.Down}
}

func (p *ResourcesPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		p.view, cmd = p.view.Update(msg)
		return p, cmd
	}

	if p.search.Focused() {
		switch k.Type {
		case tea.KeyEnter, tea.KeyEsc:
			p.search.Blur()
			return p, nil
		}
		before := p.search.Value()
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(k)
		if p.search.Value() != before {
			p.refresh()
		}
		return p, cmd
	}

	if key.Matches(k, keys.Search) {
		return p, p.search.Focus()
	}
	var cmd tea.Cmd
	p.view, cmd = p.view.Update(k)
	return p, cmd
}

// refresh reruns the search and re-renders the results.
func (p *ResourcesPage) refresh() {
	p.results = catalog.Search(p.search.Value())
	md := catalog.Markdown(p.results)

	out, err := p.render(md)
	if err != nil {
		logging.Get(logging.CategoryUI).Debug("glamour render failed", zap.Error(err))
		out = md
	}
	p.view.SetContent(out)
	p.view.GotoTop()
}

func (p *ResourcesPage) render(md string) (string, error) {
	style := "light"
	if p.env.Styles.Theme.IsDark {
		style = "dark"
	}
	width := p.env.Config.UI.WordWrap
	if p.width > 10 && p.width-4 < width {
		width = p.width - 4
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

func (p *ResourcesPage) View() string {
	s := p.env.Styles

	var sb strings.Builder
	sb.WriteString(p.search.View())
	sb.WriteString("  ")
	sb.WriteString(s.Muted.Render(fmt.Sprintf("%d resources", catalog.Count(p.results))))
	sb.WriteString("\n")
	sb.WriteString(p.view.View())
	return sb.String()
}
