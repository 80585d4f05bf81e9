package views

import "github.com/charmbracelet/lipgloss"

var (
	UserMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("86")).
				Bold(true)

	AgentMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	StatusIdleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	StatusThinkingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	StatusToolStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	SidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("240")).
			PaddingRight(1)

	SidebarTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("252"))

	SidebarActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("86")).
				Bold(true)

	SidebarItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("240"))

	HelpStyle = lipgloss.NewStyle().
			Faint(true)
)
