package session

import (
	"time"

	"github.com/amonks/studyflow/subject"
	"github.com/amonks/studyflow/task"
)

// StudySession represents a scheduled, time-boxed block of study work.
type StudySession struct {
	// ID is a unique identifier, freshly generated per schedule run.
	ID string `json:"id"`

	// TaskID identifies the originating task. Sessions are keyed by this
	// relation so task deletion never has to match on titles.
	TaskID string `json:"task_id,omitempty"`

	// Title is copied from the source task at generation time.
	Title string `json:"title"`

	// Subject is a snapshot of the owning subject.
	Subject subject.Subject `json:"subject"`

	// Duration is the planned length in minutes. Never below
	// MinDurationMinutes for generated sessions.
	Duration int `json:"duration"`

	// ScheduledTime is when the session starts.
	ScheduledTime time.Time `json:"scheduled_time"`

	// Completed marks the session as studied.
	Completed bool `json:"completed"`

	// ActualDuration is the real time spent in minutes, set only on
	// completion (nil before then).
	ActualDuration *int `json:"actual_duration,omitempty"`

	// Notes holds free-form text the user attaches after studying.
	Notes string `json:"notes,omitempty"`

	// Priority is copied from the source task.
	Priority task.Priority `json:"priority"`

	// Type categorizes the session work.
	Type Type `json:"type"`
}

// Complete marks the session finished with the given actual duration.
func (s *StudySession) Complete(actualMinutes int) error {
	if s.Completed {
		return ErrAlreadyCompleted
	}
	if actualMinutes <= 0 {
		return ErrInvalidActualDuration
	}
	s.Completed = true
	s.ActualDuration = &actualMinutes
	return nil
}

// EffectiveDuration returns the actual duration when recorded, falling
// back to the planned duration.
func (s StudySession) EffectiveDuration() int {
	if s.ActualDuration != nil {
		return *s.ActualDuration
	}
	return s.Duration
}
