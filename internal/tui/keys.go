package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit  key.Binding
	Enter key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "add line / finish on empty line"),
	),
}

func (k keyMap) helpLine() string {
	enter, quit := k.Enter.Help(), k.Quit.Help()
	return "[" + enter.Key + "] " + enter.Desc + "  [" + quit.Key + "] " + quit.Desc
}
