package subject

import "errors"

var (
	// ErrEmptyName is returned when a subject name is empty.
	ErrEmptyName = errors.New("subject name cannot be empty")

	// ErrNameTooLong is returned when a subject name exceeds MaxNameLength.
	ErrNameTooLong = errors.New("subject name exceeds maximum length")

	// ErrInvalidColor is returned when a color is not a hex string like "#RRGGBB".
	ErrInvalidColor = errors.New("subject color must be a hex string like #3B82F6")

	// ErrNegativeHours is returned when total or target hours are negative.
	ErrNegativeHours = errors.New("subject hours cannot be negative")

	// ErrSubjectNotFound is returned when a subject with the given ID doesn't exist.
	ErrSubjectNotFound = errors.New("subject not found")
)
