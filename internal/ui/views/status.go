package views

import (
	"fmt"
	"strings"

	"github.com/jmallari/gofer/internal/ui/models"
)

// RenderStatus renders the status bar showing the live run phase.
func RenderStatus(s models.State) string {
	switch s.StatusPhase {
	case "deciding":
		dots := strings.Repeat(".", s.DotCount)
		return StatusThinkingStyle.Render(fmt.Sprintf("%s Thinking%s", s.Spinner.View(), dots))
	case "running_tool":
		label := "Running tool"
		if s.ActiveTool != "" {
			label = fmt.Sprintf("Running %s", s.ActiveTool)
		}
		return StatusToolStyle.Render(fmt.Sprintf("%s %s", s.Spinner.View(), label))
	case "finalizing":
		return StatusThinkingStyle.Render(fmt.Sprintf("%s Saving", s.Spinner.View()))
	default:
		return StatusIdleStyle.Render("✔ Ready")
	}
}
