package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Actions
	Advance key.Binding
	Regress key.Binding
	Add     key.Binding
	Delete  key.Binding
	Escape  key.Binding
	Quit    key.Binding

	// Form
	NextField key.Binding
	Submit    key.Binding
	Interrupt key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),

		// Actions
		Advance: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "next status"),
		),
		Regress: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "prev status"),
		),
		Add: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "save & quit"),
		),

		// Form
		NextField: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "create"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "save & quit"),
		),
	}
}

// ShortHelp implements help.KeyMap for the main view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Advance, k.Regress, k.Add, k.Delete, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Advance, k.Regress},
		{k.Add, k.Delete, k.Escape, k.Quit},
	}
}

// bindingsFor returns the instruction bar hints for a mode
func (k KeyMap) bindingsFor(mode Mode) []key.Binding {
	switch mode {
	case AddingProject:
		return []key.Binding{k.NextField, k.Submit, k.Escape}
	case DeletingProject:
		return []key.Binding{k.Escape, k.Quit}
	default:
		return k.ShortHelp()
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
