package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit        key.Binding
	NextPane    key.Binding
	Select      key.Binding
	Toggle      key.Binding
	ClearFilter key.Binding
	Jump        key.Binding
	Search      key.Binding
	SearchNext  key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	RowDown     key.Binding
	RowUp       key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	Export      key.Binding
	SaveChart   key.Binding
	CopyRow     key.Binding
	Reload      key.Binding
	OpenHelp    key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	NextPane: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "columns / values / table"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "choose column"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle value"),
	),
	ClearFilter: key.NewBinding(
		key.WithKeys("F"),
		key.WithHelp("F", "clear filter"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to line"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search table"),
	),
	SearchNext: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next match"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	ScrollLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "scroll table left"),
	),
	ScrollRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "scroll table right"),
	),
	Export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export filtered table (CSV)"),
	),
	SaveChart: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save grouped chart (PNG)"),
	),
	CopyRow: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy row to clipboard"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload data"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.NextPane,
		k.Select,
		k.Toggle,
		k.ClearFilter,
		k.RowDown,
		k.RowUp,
		k.PageUp,
		k.PageDown,
		k.ScrollLeft,
		k.ScrollRight,
		k.Jump,
		k.Search,
		k.SearchNext,
		k.Export,
		k.SaveChart,
		k.CopyRow,
		k.Reload,
		k.Quit,
	}
}
