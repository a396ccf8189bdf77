// Package ui provides terminal formatting helpers shared by the CLI.
package ui

import "fmt"

// FormatMinutes renders a minute count as a compact hour/minute string:
// "0m", "45m", "2h", "2h 30m".
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}

	hours := minutes / 60
	mins := minutes % 60

	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}
