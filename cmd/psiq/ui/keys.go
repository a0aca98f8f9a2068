package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding used across pages. Pages pick the subset they
// show in their help line.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Toggle   key.Binding
	Back     key.Binding
	Quit     key.Binding
	Copy     key.Binding
	Reset    key.Binding
	Export   key.Binding
	Preview  key.Binding
	Edit     key.Binding
	New      key.Binding
	Delete   key.Binding
	Search   key.Binding
	NextStep key.Binding
	PrevStep key.Binding
	Confirm  key.Binding
	Deny     key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous option"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next option"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space", "toggle"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "clear"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	Preview: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "preview"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter", "i"),
		key.WithHelp("enter", "edit"),
	),
	New: key.NewBinding(
		key.WithKeys("a", "n"),
		key.WithHelp("a", "add"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	NextStep: key.NewBinding(
		key.WithKeys("tab", "pgdown"),
		key.WithHelp("tab", "next step"),
	),
	PrevStep: key.NewBinding(
		key.WithKeys("shift+tab", "pgup"),
		key.WithHelp("shift+tab", "previous step"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Deny: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n", "cancel"),
	),
}
