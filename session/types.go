// Package session defines time-boxed study sessions.
//
// Sessions are generated artifacts: the scheduler derives them from the
// task backlog, and they are regenerated wholesale when the backlog
// changes. Completed sessions survive regeneration; pending ones do not.
package session

// Type categorizes what kind of work a session holds.
type Type string

const (
	// TypeStudy is focused work on new material (the scheduler default).
	TypeStudy Type = "study"

	// TypeReview revisits previously studied material.
	TypeReview Type = "review"

	// TypePractice is exercise or problem-set work.
	TypePractice Type = "practice"

	// TypeReading is assigned reading.
	TypeReading Type = "reading"
)

// ValidTypes returns all valid session type values.
func ValidTypes() []Type {
	return []Type{TypeStudy, TypeReview, TypePractice, TypeReading}
}

// IsValid returns true if the type is a known valid value.
func (t Type) IsValid() bool {
	for _, valid := range ValidTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// MinDurationMinutes is the shortest viable session length.
const MinDurationMinutes = 25
