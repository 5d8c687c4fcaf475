package browse

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Clear    key.Binding
	ClearAll key.Binding
	Select   key.Binding
	Apply    key.Binding
	Cancel   key.Binding
	Focus    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "space", "x", "enter"), key.WithHelp("space", "toggle")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear field")),
		ClearAll: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
		Select:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "edit selection")),
		Apply:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "filters/table")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
