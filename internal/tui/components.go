package tui

import "github.com/charmbracelet/lipgloss"

// Badge renders a small inline tag, used for the role marker in the header.
func Badge(t Theme, label string) string {
	if label == "" {
		return ""
	}
	return t.badgeStyle().Render(label)
}

// ChipRow renders suggestion chips two per line. The chip at focused is
// highlighted; pass -1 for no focus.
func ChipRow(t Theme, chips []string, focused int) string {
	if len(chips) == 0 {
		return ""
	}

	rendered := make([]string, len(chips))
	for i, chip := range chips {
		if i == focused {
			rendered[i] = t.chipFocusedStyle().Render(chip)
		} else {
			rendered[i] = t.chipStyle().Render(chip)
		}
	}

	var rows []string
	for i := 0; i < len(rendered); i += 2 {
		end := min(i+2, len(rendered))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// TabBar renders labels with the active one highlighted.
func TabBar(t Theme, tabs []string, active int) string {
	if len(tabs) == 0 {
		return ""
	}

	rendered := make([]string, len(tabs))
	for i, tab := range tabs {
		if i == active {
			rendered[i] = t.tabActiveStyle().Render(tab)
		} else {
			rendered[i] = t.tabStyle().Render(tab)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// KeyHints renders the footer key legend.
func KeyHints(t Theme, hints ...string) string {
	if len(hints) == 0 {
		return ""
	}

	out := hints[0]
	for _, hint := range hints[1:] {
		out += " • " + hint
	}
	return t.hintStyle().Render(out)
}
