package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/amonks/studyflow/internal/ui"
	"github.com/amonks/studyflow/task"
)

var (
	highPriorityStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mediumPriorityStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	lowPriorityStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	completedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// renderPriority colors a priority label when the terminal supports it.
func renderPriority(p task.Priority) string {
	if !ui.ColorEnabled() {
		return string(p)
	}
	switch p {
	case task.PriorityHigh:
		return highPriorityStyle.Render(string(p))
	case task.PriorityMedium:
		return mediumPriorityStyle.Render(string(p))
	case task.PriorityLow:
		return lowPriorityStyle.Render(string(p))
	default:
		return string(p)
	}
}

func renderDone(done bool) string {
	if !done {
		return "-"
	}
	if !ui.ColorEnabled() {
		return "done"
	}
	return completedStyle.Render("done")
}
