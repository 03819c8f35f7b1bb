package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the screen responds to.
type keyMap struct {
	Quit     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Up       key.Binding
	Down     key.Binding
	Decrease key.Binding
	Increase key.Binding
	Cycle    key.Binding
	Save     key.Binding
	Open     key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	NextMode: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "mode"),
	),
	PrevMode: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev mode"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "select"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "select"),
	),
	Decrease: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "decrease"),
	),
	Increase: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "increase"),
	),
	Cycle: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "returns"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open"),
	),
}
