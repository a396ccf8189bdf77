package task

import (
	"time"

	"github.com/amonks/studyflow/subject"
)

// Task represents a single unit of study work.
type Task struct {
	// ID is a unique identifier (8-char alphanumeric, derived from initial title + timestamp).
	ID string `json:"id"`

	// Title is the short summary of the task (max 500 chars).
	Title string `json:"title"`

	// Subject is a snapshot of the owning subject taken at creation time.
	// Later edits to the subject catalog do not update this copy.
	Subject subject.Subject `json:"subject"`

	// DueDate is when the task should be finished.
	DueDate time.Time `json:"due_date"`

	// Priority is the importance level (low, medium, high).
	Priority Priority `json:"priority"`

	// Completed marks the task as done. Completed tasks are excluded
	// from scheduling.
	Completed bool `json:"completed"`

	// EstimatedTime is the expected effort in minutes. Always positive.
	EstimatedTime int `json:"estimated_time"`

	// Description provides additional context about the task.
	Description string `json:"description,omitempty"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}
