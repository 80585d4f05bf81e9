package views

import (
	"strings"

	"github.com/jmallari/gofer/internal/ui/models"
	"github.com/jmallari/gofer/internal/ui/services"
)

// RenderChat renders the message history pane.
func RenderChat(s models.State) string {
	if len(s.Messages) == 0 {
		return "No messages yet. Type a message to start."
	}
	return s.Viewport.View()
}

// FormatChatContent formats the messages for the viewport.
func FormatChatContent(messages []models.ChatLine, width int, renderer services.MarkdownRenderer) string {
	var lines []string
	for _, msg := range messages {
		if msg.Role == "user" {
			lines = append(lines, UserMessageStyle.Render("You: "+msg.Content))
		} else {
			rendered, err := renderer.Render(msg.Content, width)
			if err != nil {
				// Fall back to plain text
				lines = append(lines, AgentMessageStyle.Render(msg.Content))
			} else {
				lines = append(lines, AgentMessageStyle.Render(rendered))
			}
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
