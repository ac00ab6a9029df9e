package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab           key.Binding
	ShiftTab      key.Binding
	Quit          key.Binding
	Left          key.Binding
	Right         key.Binding
	Help          key.Binding
	LogCheckIn    key.Binding
	EditProfile   key.Binding
	EditSettings  key.Binding
	Language      key.Binding
	Theme         key.Binding
	Notifications key.Binding
	Reset         key.Binding
	Onboard       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "prev tab"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "next tab"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		LogCheckIn: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "daily check-in"),
		),
		EditProfile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "edit profile"),
		),
		EditSettings: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit settings"),
		),
		Language: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "language"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Notifications: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "notifications"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "i smoked"),
		),
		Onboard: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "start onboarding"),
		),
	}
}
