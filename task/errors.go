package task

import "errors"

var (
	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidEstimate is returned when estimated time is not positive.
	ErrInvalidEstimate = errors.New("estimated time must be positive")

	// ErrTaskNotFound is returned when a task with the given ID doesn't exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAmbiguousTaskIDPrefix is returned when an ID prefix matches multiple tasks.
	ErrAmbiguousTaskIDPrefix = errors.New("ambiguous task ID prefix")
)
