package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jmallari/gofer/internal/orchestrator"
	"github.com/jmallari/gofer/internal/store"
	uimodels "github.com/jmallari/gofer/internal/ui/models"
	"github.com/jmallari/gofer/internal/ui/views"
)

// Internal messages
type tickMsg time.Time
type runEventMsg orchestrator.Event
type runDoneMsg struct{}
type sessionsMsg []string
type sessionLoadedMsg struct {
	id    string
	lines []uimodels.ChatLine
}

func tick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// listenRun waits for the next event of the in-flight run.
func listenRun(s *orchestrator.Stream) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-s.Events()
		if !ok {
			return runDoneMsg{}
		}
		return runEventMsg(ev)
	}
}

func loadSessions(st store.Store) tea.Cmd {
	return func() tea.Msg {
		ids, err := st.ListSessions(context.Background())
		if err != nil {
			return sessionsMsg(nil)
		}
		return sessionsMsg(ids)
	}
}

func loadSession(st store.Store, id string) tea.Cmd {
	return func() tea.Msg {
		msgs, err := st.Read(context.Background(), id)
		if err != nil {
			return sessionLoadedMsg{id: id}
		}

		var lines []uimodels.ChatLine
		for _, msg := range msgs {
			if msg.Content == "" {
				continue
			}
			lines = append(lines, uimodels.ChatLine{
				Role:    msg.DisplayRole(),
				Content: msg.Content,
			})
		}
		return sessionLoadedMsg{id: id, lines: lines}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.state.Input.Focus(),
		m.state.Spinner.Tick,
		tick(),
		loadSessions(m.store),
	)
}

// View implements tea.Model.
func (m Model) View() string {
	return views.RenderRoot(m.state)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.state.Viewport.Width = msg.Width - 16
		m.state.Viewport.Height = msg.Height - 7
		m.refreshViewport()
		return m, nil

	case tickMsg:
		m.state.DotCount = (m.state.DotCount + 1) % 4
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd

	case runEventMsg:
		return m.handleRunEvent(orchestrator.Event(msg))

	case runDoneMsg:
		m.stream = nil
		m.state.Running = false
		m.state.StatusPhase = ""
		m.state.ActiveTool = ""
		return m, loadSessions(m.store)

	case sessionsMsg:
		m.state.Sessions = msg
		if m.state.SidebarIndex >= len(msg) {
			m.state.SidebarIndex = 0
		}
		return m, nil

	case sessionLoadedMsg:
		m.state.SessionID = msg.id
		m.state.Messages = msg.lines
		m.refreshViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	return m, cmd
}

func (m Model) handleRunEvent(ev orchestrator.Event) (tea.Model, tea.Cmd) {
	switch ev.Kind {
	case orchestrator.EventStatus:
		if ev.Status == orchestrator.StatusIdle {
			m.state.StatusPhase = ""
			m.state.ActiveTool = ""
		} else {
			m.state.StatusPhase = string(ev.Status)
			m.state.ActiveTool = ev.Tool
		}

	case orchestrator.EventContent:
		m.state.Messages = append(m.state.Messages, uimodels.ChatLine{
			Role:    "agent",
			Content: ev.Content,
		})
		m.refreshViewport()

	case orchestrator.EventError:
		m.state.Messages = append(m.state.Messages, uimodels.ChatLine{
			Role:    "agent",
			Content: fmt.Sprintf("Something went wrong: %v", ev.Err),
		})
		m.refreshViewport()
	}

	return m, listenRun(m.stream)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.SidebarFocus {
		return m.handleSidebarKey(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		if len(m.state.Sessions) > 0 {
			m.state.SidebarFocus = true
		}
		return m, nil

	case "ctrl+n":
		if m.state.Running {
			return m, nil
		}
		m.state.SessionID = uuid.NewString()
		m.state.Messages = nil
		m.refreshViewport()
		return m, nil

	case "enter":
		input := m.state.Input.Value()
		if input == "" || m.state.Running {
			return m, nil
		}

		m.state.Input.Reset()
		m.state.Messages = append(m.state.Messages, uimodels.ChatLine{
			Role:    "user",
			Content: input,
		})
		m.refreshViewport()

		m.state.Running = true
		m.stream = m.orch.Run(context.Background(), m.state.SessionID, input)
		return m, listenRun(m.stream)

	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	return m, cmd
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.state.SidebarIndex > 0 {
			m.state.SidebarIndex--
		}
	case "down", "j":
		if m.state.SidebarIndex < len(m.state.Sessions)-1 {
			m.state.SidebarIndex++
		}
	case "enter":
		m.state.SidebarFocus = false
		if m.state.Running || m.state.SidebarIndex >= len(m.state.Sessions) {
			return m, nil
		}
		return m, loadSession(m.store, m.state.Sessions[m.state.SidebarIndex])
	case "tab", "esc":
		m.state.SidebarFocus = false
	}
	return m, nil
}

func (m *Model) refreshViewport() {
	width := m.state.Viewport.Width
	if width <= 0 {
		width = 80
	}
	m.state.Viewport.SetContent(views.FormatChatContent(m.state.Messages, width, m.renderer))
	m.state.Viewport.GotoBottom()
}
