package views

import (
	"strings"

	"github.com/jmallari/gofer/internal/ui/models"
)

// sidebarWidth is the fixed column width of the session list.
const sidebarWidth = 14

// RenderSidebar renders the session list. Session ids are truncated to the
// column width; the active session is highlighted, and the cursor row is
// prefixed while the sidebar has focus.
func RenderSidebar(s models.State) string {
	lines := []string{SidebarTitleStyle.Render("Chats")}

	for i, id := range s.Sessions {
		label := id
		if len(label) > sidebarWidth-4 {
			label = label[:sidebarWidth-4]
		}

		prefix := "  "
		if s.SidebarFocus && i == s.SidebarIndex {
			prefix = "> "
		}

		if id == s.SessionID {
			lines = append(lines, SidebarActiveStyle.Render(prefix+label))
		} else {
			lines = append(lines, SidebarItemStyle.Render(prefix+label))
		}
	}

	return SidebarStyle.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}
