package schedule

import "errors"

var (
	// ErrInvalidBudget is returned when the daily budget is NaN or infinite.
	ErrInvalidBudget = errors.New("available hours must be finite")

	// ErrUnknownSubject is returned when a task references a subject
	// missing from the supplied catalog.
	ErrUnknownSubject = errors.New("task references unknown subject")
)
