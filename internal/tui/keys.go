package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit   key.Binding
	Exit   key.Binding
	Back   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Enter  key.Binding
	Toggle key.Binding
	Login  key.Binding
	Chat   key.Binding
	Up     key.Binding
	Down   key.Binding
}

var keys = keyMap{
	Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Exit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	Login:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log in")),
	Chat:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chat")),
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
}

// helpKeys adapts a flat binding list to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }
