package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	PageUp         key.Binding
	PageDown       key.Binding
	NextSection    key.Binding
	PrevSection    key.Binding
	JumpSection    key.Binding
	ToggleSpectra  key.Binding
	ToggleGrouping key.Binding
	CenturyFocus   key.Binding
	CenturyToggle  key.Binding
	CenturyClear   key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		JumpSection: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "section"),
		),
		ToggleSpectra: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "spectra"),
		),
		ToggleGrouping: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "group"),
		),
		CenturyFocus: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "century"),
		),
		CenturyToggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		CenturyClear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "all centuries"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ExplorerKeyMap relabels the vertical keys, which pick the element in the
// explorer instead of scrolling.
func ExplorerKeyMap() KeyMap {
	km := DefaultKeyMap()
	km.Up.SetHelp("↑/k", "prev element")
	km.Down.SetHelp("↓/j", "next element")
	return km
}
