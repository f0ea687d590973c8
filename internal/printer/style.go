package printer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gurama/tasktracker/internal/model"
)

// Status colors, same palette as the mobile and browser front ends.
var statusColors = map[model.TaskStatus]lipgloss.Color{
	model.TaskStatusNotStarted: lipgloss.Color("#9CA3AF"),
	model.TaskStatusOngoing:    lipgloss.Color("#3B82F6"),
	model.TaskStatusCompleted:  lipgloss.Color("#10B981"),
}

func statusStyle(s model.TaskStatus) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(statusColors[s])
}

// colorize styles s with the status color when color is enabled.
func colorize(color bool, status model.TaskStatus, s string) string {
	if !color {
		return s
	}
	return statusStyle(status).Render(s)
}
