package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the demo's key bindings. Terminals deliver no key-release
// events, so the navigator's invoke-key release is synthesized: enter
// releases with the confirm modifier, pressing the invoke key again
// releases without it.
type keyMap struct {
	Open    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Hide    key.Binding
	Lock    key.Binding
	Mute    key.Binding
	Move    key.Binding
	Quit    key.Binding
}

var defaultKeyMap = keyMap{
	Open: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "open/cancel navigator"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Hide: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "toggle hide"),
	),
	Lock: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "toggle lock"),
	),
	Mute: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "toggle mute"),
	),
	Move: key.NewBinding(
		key.WithKeys(
			"left", "right", "up", "down",
			"shift+left", "shift+right", "shift+up", "shift+down",
		),
		key.WithHelp("arrows", "move key selection (shift extends)"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// helpLine formats the bindings for the footer.
func (k keyMap) helpLine(open bool) string {
	bindings := []key.Binding{k.Open, k.Move, k.Quit}
	if open {
		bindings = []key.Binding{k.Confirm, k.Open, k.Cancel, k.Hide, k.Lock, k.Mute}
	}

	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		out += b.Help().Key + " " + b.Help().Desc
	}
	return out
}
