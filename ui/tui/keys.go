package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Previous  key.Binding
	Next      key.Binding
	Random    key.Binding
	Shiny     key.Binding
	Entry     key.Binding
	Activate  key.Binding
	Submit    key.Binding
	FocusNext key.Binding
	FocusPrev key.Binding
	Cancel    key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Previous: key.NewBinding(
			key.WithKeys("left", "p"),
			key.WithHelp("←/p", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "n"),
			key.WithHelp("→/n", "next"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random"),
		),
		Shiny: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shiny"),
		),
		Entry: key.NewBinding(
			key.WithKeys("/", "i"),
			key.WithHelp("/", "enter number"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Random, k.Shiny, k.Entry, k.FocusNext, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.Random, k.Shiny},
		{k.Entry, k.Activate, k.FocusNext, k.Quit},
	}
}
