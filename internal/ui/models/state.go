package models

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// ChatLine is a single displayable entry in the conversation pane.
type ChatLine struct {
	Role    string // "user" or "agent"
	Content string
}

// State is the complete UI state rendered by the views.
type State struct {
	Input    textinput.Model
	Viewport viewport.Model
	Spinner  spinner.Model

	Width  int
	Height int

	// Conversation pane
	Messages []ChatLine

	// Status bar
	StatusPhase string // "", "deciding", "running_tool", "finalizing"
	ActiveTool  string
	Running     bool
	DotCount    int

	// Session sidebar
	Sessions     []string
	SessionID    string
	SidebarFocus bool
	SidebarIndex int
}
