// Package ui is the terminal front-end: a chat pane with a live status bar
// and a sidebar for resuming stored sessions. It drives the orchestrator and
// consumes its event streams; all agent logic lives elsewhere.
package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jmallari/gofer/internal/orchestrator"
	"github.com/jmallari/gofer/internal/store"
	"github.com/jmallari/gofer/internal/ui/models"
	"github.com/jmallari/gofer/internal/ui/services"
)

// UI owns the Bubble Tea program.
type UI struct {
	model Model
}

// New assembles the UI with its injected dependencies.
func New(orch *orchestrator.Orchestrator, st store.Store, renderer services.MarkdownRenderer) *UI {
	return &UI{model: newModel(orch, st, renderer)}
}

// Run blocks until the user quits.
func (u *UI) Run() error {
	program := tea.NewProgram(u.model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Model implements tea.Model.
type Model struct {
	state    models.State
	orch     *orchestrator.Orchestrator
	store    store.Store
	renderer services.MarkdownRenderer

	// stream is the event stream of the in-flight run, nil when idle.
	stream *orchestrator.Stream
}

func newModel(orch *orchestrator.Orchestrator, st store.Store, renderer services.MarkdownRenderer) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.Focus()

	vp := viewport.New(80, 20)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		state: models.State{
			Input:     ti,
			Viewport:  vp,
			Spinner:   sp,
			SessionID: uuid.NewString(),
		},
		orch:     orch,
		store:    st,
		renderer: renderer,
	}
}
