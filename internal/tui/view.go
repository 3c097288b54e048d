package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hotgigs/careerassist/internal/model/chat"
)

// View renders the full chat screen.
func (m Model) View() string {
	if !m.ready {
		return "Starting the career assistant...\n"
	}

	var b strings.Builder

	if m.showBanner() {
		b.WriteString(m.theme.bannerStyle().Render(m.banner))
		b.WriteString("\n\n")
	}

	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.isLoading {
		b.WriteString(m.spinner.View() + m.theme.hintStyle().Render(" assistant is typing..."))
	} else {
		focused := -1
		if m.chipFocus {
			focused = m.focusedChip
		}
		b.WriteString(ChipRow(m.theme, m.suggestions, focused))
	}
	b.WriteString("\n")

	b.WriteString(m.textinput.View())
	b.WriteString("\n")
	b.WriteString(m.footerView())

	return b.String()
}

func (m Model) headerView() string {
	badge := Badge(m.theme, m.profile.Role.Label())
	tabs := TabBar(m.theme, []string{"chat", "suggestions"}, m.activeTab())
	return lipgloss.JoinHorizontal(lipgloss.Center,
		badge, " "+m.profile.DisplayName+"  ", tabs)
}

func (m Model) footerView() string {
	if m.err != nil {
		return m.theme.errorStyle().Render("error: " + m.err.Error())
	}

	hints := KeyHints(m.theme,
		"enter send", "tab suggestions", "ctrl+y copy reply", "esc quit")
	if m.status != "" {
		return m.theme.hintStyle().Render(m.status) + "  " + hints
	}
	return hints
}

// renderHistory renders the transcript for the viewport.
func (m Model) renderHistory() string {
	if len(m.history) == 0 {
		return m.theme.hintStyle().Render("Connecting...")
	}

	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	body := lipgloss.NewStyle().Width(width)

	sections := make([]string, 0, len(m.history))
	for _, msg := range m.history {
		label := m.theme.assistantLabelStyle().Render("Assistant")
		if msg.Author == chat.AuthorUser {
			label = m.theme.userLabelStyle().Render(m.profile.DisplayName)
		}
		stamp := m.theme.hintStyle().Render(msg.CreatedAt.Local().Format("15:04"))
		sections = append(sections, label+" "+stamp+"\n"+body.Render(msg.Content))
	}
	return strings.Join(sections, "\n\n")
}

// chromeHeight is everything on screen except the transcript viewport:
// header, chip rows, input, footer and spacing.
func (m Model) chromeHeight() int {
	h := 8
	if m.showBanner() {
		h += strings.Count(m.banner, "\n") + 2
	}
	return h
}

// showBanner hides the ASCII banner on short terminals.
func (m Model) showBanner() bool {
	return m.height >= minBannerHeight
}

func (m Model) activeTab() int {
	if m.chipFocus {
		return 1
	}
	return 0
}
