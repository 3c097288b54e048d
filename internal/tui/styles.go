// Package tui implements the interactive terminal chat client: a transcript
// viewport, an input box, and suggestion chips the user can cycle through
// with the keyboard.
package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the color scheme for the chat interface.
type Theme struct {
	Accent  lipgloss.Color
	User    lipgloss.Color
	Hint    lipgloss.Color
	Error   lipgloss.Color
	ChipBg  lipgloss.Color
	FocusBg lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	Accent:  lipgloss.Color("#5FAFD7"), // light blue
	User:    lipgloss.Color("#00D787"), // green
	Hint:    lipgloss.Color("#6C6C6C"), // dim gray
	Error:   lipgloss.Color("#FF005F"), // red
	ChipBg:  lipgloss.Color("#3A3A3A"), // dark gray
	FocusBg: lipgloss.Color("#005F87"), // deep blue
}

// Style functions for dynamic theming
func (t Theme) bannerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent)
}

func (t Theme) assistantLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
}

func (t Theme) userLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.User).Bold(true)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

func (t Theme) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error).Bold(true)
}

func (t Theme) spinnerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent)
}

func (t Theme) badgeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(t.Accent).
		Padding(0, 1).
		Bold(true)
}

func (t Theme) chipStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.ChipBg).
		Padding(0, 1).
		MarginRight(1)
}

func (t Theme) chipFocusedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(t.FocusBg).
		Padding(0, 1).
		MarginRight(1).
		Bold(true)
}

func (t Theme) tabStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Padding(0, 1)
}

func (t Theme) tabActiveStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Padding(0, 1).Bold(true).Underline(true)
}
