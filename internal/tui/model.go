package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/common-nighthawk/go-figure"

	"github.com/hotgigs/careerassist/internal/model/chat"
	"github.com/hotgigs/careerassist/internal/model/profile"
)

const (
	startTimeout = 10 * time.Second
	// Sends block through the server-side think delay, so give them room.
	sendTimeout = 2 * time.Minute

	minBannerHeight = 24
)

// Messages for tea updates
type (
	startedMsg State
	turnMsg    Turn
	errorMsg   error
)

// Model is the bubbletea model for the chat interface.
type Model struct {
	// UI components
	textinput textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model
	theme     Theme
	banner    string

	// Backend
	engine  Engine
	profile profile.Profile

	// State
	sessionID   string
	history     []chat.Message
	suggestions []string
	chipFocus   bool
	focusedChip int
	isLoading   bool
	status      string
	err         error
	width       int
	height      int
	ready       bool
}

// NewModel builds the chat model for the given engine and profile.
func NewModel(engine Engine, p profile.Profile) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask about resumes, jobs, interviews... (Enter to send)"
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = defaultTheme.spinnerStyle()

	banner := figure.NewFigure("Career Chat", "", true).String()

	return Model{
		textinput: ti,
		spinner:   sp,
		theme:     defaultTheme,
		banner:    strings.Trim(banner, "\n"),
		engine:    engine,
		profile:   p,
		isLoading: true,
	}
}

// Init starts the session and the input cursor.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.startSession(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.chipFocus {
				return m.pickSuggestion(), nil
			}
			return m.handleSubmit()

		case tea.KeyTab:
			return m.cycleChipFocus(1), nil

		case tea.KeyShiftTab:
			return m.cycleChipFocus(-1), nil

		case tea.KeyLeft:
			if m.chipFocus {
				return m.moveChipFocus(-1), nil
			}

		case tea.KeyRight:
			if m.chipFocus {
				return m.moveChipFocus(1), nil
			}

		case tea.KeyCtrlY:
			return m.copyLastReply(), nil
		}

		// Regular key input goes to the text box.
		if !m.isLoading && !m.chipFocus {
			m.textinput, tiCmd = m.textinput.Update(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		viewportHeight := max(msg.Height-m.chromeHeight(), 3)
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = viewportHeight
		}
		m.textinput.Width = msg.Width - 6
		m.refreshViewport()

	case spinner.TickMsg:
		if m.isLoading {
			m.spinner, spCmd = m.spinner.Update(msg)
			return m, spCmd
		}

	case startedMsg:
		m.isLoading = false
		m.sessionID = msg.SessionID
		m.history = msg.Messages
		m.suggestions = msg.Suggestions
		m.refreshViewport()

	case turnMsg:
		m.isLoading = false
		// Swap the provisional echo for the server's copy, then append the
		// reply and its fresh suggestions.
		if n := len(m.history); n > 0 && m.history[n-1].Author == chat.AuthorUser {
			m.history[n-1] = msg.User
		}
		m.history = append(m.history, msg.Reply)
		m.suggestions = msg.Suggestions
		m.chipFocus = false
		m.focusedChip = 0
		m.refreshViewport()

	case errorMsg:
		m.isLoading = false
		m.err = msg
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textinput.Value())
	if input == "" || m.isLoading || m.sessionID == "" {
		return m, nil
	}

	// Provisional echo; replaced by the authoritative copy when the turn
	// lands.
	m.history = append(m.history, chat.Message{
		Author:    chat.AuthorUser,
		Content:   input,
		CreatedAt: time.Now().UTC(),
	})
	m.textinput.Reset()
	m.status = ""
	m.err = nil
	m.isLoading = true
	m.refreshViewport()

	return m, tea.Batch(
		m.spinner.Tick,
		m.send(input),
	)
}

// pickSuggestion copies the focused chip into the input box. Suggestions are
// an input convenience, never an auto-send.
func (m Model) pickSuggestion() Model {
	if m.focusedChip < 0 || m.focusedChip >= len(m.suggestions) {
		return m
	}
	m.textinput.SetValue(m.suggestions[m.focusedChip])
	m.textinput.CursorEnd()
	m.chipFocus = false
	m.textinput.Focus()
	return m
}

// cycleChipFocus moves keyboard focus input -> chips -> input. Chips are
// hidden while a reply is pending, so focus stays on the input then.
func (m Model) cycleChipFocus(delta int) Model {
	if m.isLoading || len(m.suggestions) == 0 {
		return m
	}

	if !m.chipFocus {
		m.chipFocus = true
		m.textinput.Blur()
		if delta >= 0 {
			m.focusedChip = 0
		} else {
			m.focusedChip = len(m.suggestions) - 1
		}
		return m
	}

	next := m.focusedChip + delta
	if next < 0 || next >= len(m.suggestions) {
		m.chipFocus = false
		m.focusedChip = 0
		m.textinput.Focus()
		return m
	}
	m.focusedChip = next
	return m
}

// moveChipFocus moves within the chip row, stopping at the ends.
func (m Model) moveChipFocus(delta int) Model {
	next := m.focusedChip + delta
	if next < 0 || next >= len(m.suggestions) {
		return m
	}
	m.focusedChip = next
	return m
}

// copyLastReply writes the newest assistant message to the system clipboard.
func (m Model) copyLastReply() Model {
	for i := len(m.history) - 1; i >= 0; i-- {
		if m.history[i].Author != chat.AuthorAssistant {
			continue
		}
		if err := clipboard.WriteAll(m.history[i].Content); err != nil {
			m.status = "clipboard unavailable"
		} else {
			m.status = "reply copied"
		}
		return m
	}
	return m
}

// startSession creates the session off the UI loop.
func (m Model) startSession() tea.Cmd {
	engine := m.engine
	p := m.profile
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
		defer cancel()

		state, err := engine.Start(ctx, p)
		if err != nil {
			return errorMsg(err)
		}
		return startedMsg(state)
	}
}

// send submits the message off the UI loop and delivers the finished turn.
func (m Model) send(content string) tea.Cmd {
	engine := m.engine
	sessionID := m.sessionID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		turn, err := engine.Send(ctx, sessionID, content)
		if err != nil {
			return errorMsg(err)
		}
		return turnMsg(turn)
	}
}

// refreshViewport re-renders the transcript and pins to the newest message.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}

// Run starts the interactive chat session and blocks until the user quits.
func Run(engine Engine, p profile.Profile) error {
	program := tea.NewProgram(NewModel(engine, p), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("chat ui: %w", err)
	}
	return nil
}
