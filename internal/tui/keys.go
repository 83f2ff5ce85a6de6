package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Up       key.Binding
	Down     key.Binding
	Assign   key.Binding
	AddGroup key.Binding
	DelGroup key.Binding
	Export   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Prev:     key.NewBinding(key.WithKeys("left", "h", "<"), key.WithHelp("←/h", "prev")),
		Next:     key.NewBinding(key.WithKeys("right", "l", ">"), key.WithHelp("→/l", "next")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "group up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "group down")),
		Assign:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/1-9", "assign")),
		AddGroup: key.NewBinding(key.WithKeys("+", "a"), key.WithHelp("+", "new group")),
		DelGroup: key.NewBinding(key.WithKeys("-", "d"), key.WithHelp("-", "delete group")),
		Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Assign, k.AddGroup, k.DelGroup, k.Export, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Up, k.Down},
		{k.Assign, k.AddGroup, k.DelGroup},
		{k.Export, k.Help, k.Quit},
	}
}
