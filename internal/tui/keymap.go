package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings that map onto the logical commands.
type KeyMap struct {
	Quit        key.Binding
	SwitchFocus key.Binding
	Down        key.Binding
	Up          key.Binding
	Enter       key.Binding
	Parent      key.Binding
	CopyRight   key.Binding // focused: left pane is the source
	CopyLeft    key.Binding // focused: right pane is the source
	Help        key.Binding
}

// DefaultKeyMap returns the default bindings: vim-style movement plus the
// e/i transfer pair.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Enter: key.NewBinding(
			key.WithKeys("l", "right", "enter"),
			key.WithHelp("l/enter", "open"),
		),
		Parent: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "go up"),
		),
		CopyRight: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "copy →"),
		),
		CopyLeft: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "copy ←"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchFocus, k.Enter, k.Parent, k.CopyRight, k.CopyLeft, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Parent},
		{k.SwitchFocus, k.CopyRight, k.CopyLeft},
		{k.Help, k.Quit},
	}
}
