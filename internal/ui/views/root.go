package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jmallari/gofer/internal/ui/models"
)

// RenderRoot renders the complete UI layout: sidebar beside the chat pane,
// input and status bar underneath.
func RenderRoot(s models.State) string {
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		RenderSidebar(s),
		RenderChat(s),
	)

	sections := []string{
		body,
		RenderInput(s),
		RenderStatus(s),
		HelpStyle.Render("enter: send  tab: chats  ctrl+n: new chat  ctrl+c: quit"),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderInput renders the input field.
func RenderInput(s models.State) string {
	return InputStyle.Render(s.Input.View())
}
