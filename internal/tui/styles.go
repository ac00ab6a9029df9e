package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/smokeless/internal/constants"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

// themeStyles are the styles that follow the light/dark preference.
type themeStyles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	muted lipgloss.Style
	card  lipgloss.Style
	quote lipgloss.Style
}

func newThemeStyles(theme string) themeStyles {
	text, border := lipgloss.Color("235"), lipgloss.Color("63")
	if theme == constants.ThemeDark {
		text, border = lipgloss.Color("255"), lipgloss.Color("62")
	}

	return themeStyles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1),
		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(26),
		value: lipgloss.NewStyle().
			Foreground(text).
			Bold(true),
		muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Width(24).
			Align(lipgloss.Center),
		quote: lipgloss.NewStyle().
			Foreground(text).
			Italic(true).
			MarginTop(1),
	}
}

func formTheme(theme string) *huh.Theme {
	if theme == constants.ThemeDark {
		return huh.ThemeDracula()
	}
	return huh.ThemeCharm()
}
