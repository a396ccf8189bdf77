// Package task implements the study-task backlog.
//
// Tasks are the user-authored units of work the scheduler draws from. A
// completed task leaves the backlog and is never scheduled again.
package task

// Priority represents the importance of a task.
type Priority string

const (
	// PriorityLow is the least important level.
	PriorityLow Priority = "low"

	// PriorityMedium is the default level.
	PriorityMedium Priority = "medium"

	// PriorityHigh is the most important level.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Weight returns the scheduling weight for a priority. Higher weights
// schedule first.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// MaxTitleLength is the maximum allowed length for a task title.
const MaxTitleLength = 500
