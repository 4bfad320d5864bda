package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit, Toggle, New, Delete, Export key.Binding

	Tab1, Tab2, Tab3, Tab4, Tab key.Binding

	Help, Enter, Back, Quit key.Binding

	Up, Down, Left, Right key.Binding
}

func bind(help, desc string, ks ...string) key.Binding {
	return key.NewBinding(key.WithKeys(ks...), key.WithHelp(help, desc))
}

var keys = keyMap{
	Submit: bind("s", "submit day", "s"),
	Toggle: bind("space", "toggle", " ", "x"),
	New:    bind("n", "new", "n"),
	Delete: bind("d", "archive", "d"),
	Export: bind("e", "export", "e"),

	Tab1: bind("1", "dashboard", "1"),
	Tab2: bind("2", "planner", "2"),
	Tab3: bind("3", "reports", "3"),
	Tab4: bind("4", "settings", "4"),
	Tab:  bind("tab", "next view", "tab"),

	Help:  bind("?", "help", "?"),
	Enter: bind("enter", "select", "enter"),
	Back:  bind("esc", "back", "esc"),
	Quit:  bind("q", "quit", "q", "ctrl+c"),

	Up:    bind("↑/k", "up", "up", "k"),
	Down:  bind("↓/j", "down", "down", "j"),
	Left:  bind("←/h", "prev", "left", "h"),
	Right: bind("→/l", "next", "right", "l"),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Toggle, k.New, k.Export, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Toggle, k.Export},
		{k.New, k.Delete, k.Enter},
		{k.Tab1, k.Tab2, k.Tab3, k.Tab4, k.Tab},
		{k.Up, k.Down, k.Left, k.Right, k.Back, k.Quit},
	}
}
