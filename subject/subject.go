// Package subject defines study subjects and their validation.
//
// A subject is the unit that study time accrues against: tasks and
// sessions carry a snapshot copy of their subject, and the catalog held
// by the planner is the authoritative record of accumulated hours.
package subject

import "time"

// Subject represents one area of study.
type Subject struct {
	// ID is a unique identifier (8-char alphanumeric, derived from initial name + timestamp).
	ID string `json:"id"`

	// Name is the display name of the subject.
	Name string `json:"name"`

	// Color is the display color as a hex string like "#3B82F6".
	Color string `json:"color"`

	// TotalHours is the accumulated study time. It only moves upward as
	// sessions complete, except through explicit user edits.
	TotalHours float64 `json:"total_hours"`

	// TargetHours is the user's study goal for this subject.
	TargetHours float64 `json:"target_hours"`

	// Description provides additional context about the subject.
	Description string `json:"description,omitempty"`

	// CreatedAt is when the subject was created.
	CreatedAt time.Time `json:"created_at"`
}

// TargetProgress returns accumulated hours as a fraction of the target,
// or 0 when no target is set.
func (s Subject) TargetProgress() float64 {
	if s.TargetHours <= 0 {
		return 0
	}
	progress := s.TotalHours / s.TargetHours
	if progress > 1 {
		return 1
	}
	return progress
}
