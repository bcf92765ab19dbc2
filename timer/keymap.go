package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	start     key.Binding
	checkin   key.Binding
	restart   key.Binding
	prev      key.Binding
	next      key.Binding
	preset    key.Binding
	intent    key.Binding
	done      key.Binding
	quit      key.Binding
	forceQuit key.Binding
}

var defaultKeymap = keymap{
	start: key.NewBinding(
		key.WithKeys("enter", "s"),
		key.WithHelp("enter", "start"),
	),
	checkin: key.NewBinding(
		key.WithKeys("c", " "),
		key.WithHelp("space", "check in"),
	),
	restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart"),
	),
	prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "shorter"),
	),
	next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "longer"),
	),
	preset: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "preset"),
	),
	intent: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "intent"),
	),
	done: key.NewBinding(
		key.WithKeys("enter", "tab", "esc"),
		key.WithHelp("enter", "save intent"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	forceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
