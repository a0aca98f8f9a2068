package ui

import (
	"strings"
	"time"

	"psiquitools/internal/clipboard"
	"psiquitools/internal/config"
	"psiquitools/internal/logging"
	"psiquitools/internal/toolkit"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Env is what every page shares.
type Env struct {
	Config    *config.Config
	Clipboard clipboard.Writer
	Styles    Styles
	Now       func() time.Time
}

// NewEnv builds the page environment from configuration.
func NewEnv(cfg *config.Config) *Env {
	w := clipboard.System()
	if !cfg.Clipboard.Enabled {
		w = clipboard.Discard
	}
	return &Env{
		Config:    cfg,
		Clipboard: w,
		Styles:    NewStyles(ThemeFor(cfg.UI.Theme)),
		Now:       time.Now,
	}
}

// Page is one tool screen.
type Page interface {
	Update(msg tea.Msg) (Page, tea.Cmd)
	View() string
	Title() string
	Help() []key.Binding
	// Capturing reports whether the page handles Esc itself: an open form,
	// prompt or sub-view. Otherwise Esc returns to the home menu.
	Capturing() bool
	SetSize(width, height int)
}

// openToolMsg asks the app to open a tool page.
type openToolMsg struct{ id string }

// App is the root model: the home menu plus at most one open tool.
type App struct {
	env    *Env
	home   *HomePage
	page   Page
	help   help.Model
	width  int
	height int
}

// NewApp starts on the home menu.
func NewApp(env *Env) App {
	return App{env: env, home: NewHomePage(env), help: help.New()}
}

// NewAppWithPage starts with a tool already open. Esc still returns home.
func NewAppWithPage(env *Env, page Page) App {
	a := NewApp(env)
	a.page = page
	return a
}

// NewToolPage builds the page for a toolkit id.
func NewToolPage(env *Env, id string) Page {
	switch id {
	case "history":
		return NewHistoryPage(env, nil)
	case "mse":
		return NewMSEPage(env, nil)
	case "scales":
		return NewScalesPage(env)
	case "resources":
		return NewResourcesPage(env, "")
	case "timeline":
		return NewTimelinePage(env, nil)
	}
	return nil
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.home.SetSize(msg.Width, a.bodyHeight())
		if a.page != nil {
			a.page.SetSize(msg.Width, a.bodyHeight())
		}
		return a, nil

	case openToolMsg:
		page := NewToolPage(a.env, msg.id)
		if page == nil {
			return a, nil
		}
		page.SetSize(a.width, a.bodyHeight())
		a.page = page
		logging.Get(logging.CategoryUI).Debug("page opened", zap.String("tool", msg.id))
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.page == nil {
			if key.Matches(msg, keys.Quit) {
				return a, tea.Quit
			}
			var cmd tea.Cmd
			a.home, cmd = a.home.Update(msg)
			return a, cmd
		}
		if !a.page.Capturing() && key.Matches(msg, keys.Back) {
			logging.Get(logging.CategoryUI).Debug("page closed", zap.String("page", a.page.Title()))
			a.page = nil
			return a, nil
		}
	}

	if a.page == nil {
		return a, nil
	}
	var cmd tea.Cmd
	a.page, cmd = a.page.Update(msg)
	return a, cmd
}

// bodyHeight leaves room for the header and help lines.
func (a App) bodyHeight() int {
	if h := a.height - 4; h > 0 {
		return h
	}
	return 0
}

func (a App) View() string {
	s := a.env.Styles

	title := "psiqui.tools"
	body := ""
	bindings := []key.Binding{keys.Up, keys.Down, keys.Enter, keys.Quit}
	if a.page != nil {
		title += " › " + a.page.Title()
		body = a.page.View()
		bindings = append(a.page.Help(), keys.Back)
	} else {
		body = a.home.View()
	}

	var sb strings.Builder
	sb.WriteString(s.Header.Render(title))
	sb.WriteString("\n")
	sb.WriteString(s.Content.Render(body))
	sb.WriteString("\n")
	sb.WriteString(s.Footer.Render(a.help.ShortHelpView(bindings)))
	return sb.String()
}

// Page returns the open tool page, or nil on the home menu.
func (a App) Page() Page { return a.page }

// HomePage is the landing menu.
type HomePage struct {
	env    *Env
	tools  []toolkit.Tool
	cursor int
	width  int
}

// NewHomePage lists the toolkit.
func NewHomePage(env *Env) *HomePage {
	return &HomePage{env: env, tools: toolkit.Tools()}
}

func (h *HomePage) SetSize(width, _ int) { h.width = width }

// Selected returns the highlighted tool.
func (h *HomePage) Selected() toolkit.Tool { return h.tools[h.cursor] }

func (h *HomePage) Update(msg tea.KeyMsg) (*HomePage, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if h.cursor > 0 {
			h.cursor--
		}
	case key.Matches(msg, keys.Down):
		if h.cursor < len(h.tools)-1 {
			h.cursor++
		}
	case key.Matches(msg, keys.Enter):
		id := h.tools[h.cursor].ID
		return h, func() tea.Msg { return openToolMsg{id: id} }
	}
	return h, nil
}

func (h *HomePage) View() string {
	s := h.env.Styles

	var sb strings.Builder
	sb.WriteString(s.Title.Render("psiqui.tools"))
	sb.WriteString("\n")
	sb.WriteString(s.Subtitle.Render(toolkit.Tagline))
	sb.WriteString("\n\n")
	sb.WriteString(s.Notice.Render(s.Bold.Render(toolkit.PrivacyTitle) + "\n" + wrapText(toolkit.PrivacyNotice, h.wrapWidth())))
	sb.WriteString("\n\n")

	for i, t := range h.tools {
		marker := "  "
		title := s.Bold.Render(t.Title)
		if i == h.cursor {
			marker = s.Cursor.Render("› ")
			title = s.Cursor.Render(t.Title)
		}
		sb.WriteString(marker + title + "\n")
		sb.WriteString("    " + s.Muted.Render(t.Description) + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render(toolkit.Disclaimer))
	return sb.String()
}

func (h *HomePage) wrapWidth() int {
	if h.width > 10 && h.width-8 < h.env.Config.UI.WordWrap {
		return h.width - 8
	}
	return h.env.Config.UI.WordWrap
}

// wrapText word-wraps plain text for the terminal.
func wrapText(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(text)
}
