package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the workspace TUI.
type KeyMap struct {
	// Navigation.
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// Tree state.
	Collapse key.Binding
	Expand   key.Binding

	// Grab-and-drop reparenting.
	Grab       key.Binding // Pick up the node under the cursor.
	Drop       key.Binding // Drop the grabbed node onto the cursor target.
	DropAtRoot key.Binding // Drop the grabbed node at the top level.
	Cancel     key.Binding // Cancel the grab (or dismiss the prompt).

	// Mutations.
	NewDirectory key.Binding
	Delete       key.Binding

	// View switching and refresh.
	ToggleView key.Binding
	Refresh    key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Collapse: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Expand: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Grab: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "grab"),
	),
	Drop: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "drop here"),
	),
	DropAtRoot: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "drop at root"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	NewDirectory: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new directory"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	ToggleView: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch view"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
