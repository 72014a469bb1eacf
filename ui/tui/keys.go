package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the widget key bindings.
type KeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Jump      key.Binding
	DragLeft  key.Binding
	DragRight key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab/→", "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab/←", "prev tab"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to tab"),
		),
		DragLeft: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "drag left"),
		),
		DragRight: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "drag right"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Jump},
		{k.DragLeft, k.DragRight},
		{k.Help, k.Quit},
	}
}
