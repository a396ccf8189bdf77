package session

import "errors"

var (
	// ErrSessionNotFound is returned when a session with the given ID doesn't exist.
	ErrSessionNotFound = errors.New("session not found")

	// ErrAlreadyCompleted is returned when completing an already-completed session.
	ErrAlreadyCompleted = errors.New("session already completed")

	// ErrInvalidActualDuration is returned when a completion duration is not positive.
	ErrInvalidActualDuration = errors.New("actual duration must be positive")
)
