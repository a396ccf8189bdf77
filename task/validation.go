package task

import (
	internalstrings "github.com/amonks/studyflow/internal/strings"
)

// ValidateTitle checks that a title is non-empty and within length limits.
func ValidateTitle(title string) error {
	title = internalstrings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// ValidateEstimate checks that an estimated time is positive.
func ValidateEstimate(minutes int) error {
	if minutes <= 0 {
		return ErrInvalidEstimate
	}
	return nil
}

// NormalizePriority lowercases and trims a priority value, validating it.
func NormalizePriority(p Priority) (Priority, error) {
	normalized := Priority(internalstrings.NormalizeLowerTrimSpace(string(p)))
	if normalized == "" {
		return PriorityMedium, nil
	}
	if !normalized.IsValid() {
		return "", ErrInvalidPriority
	}
	return normalized, nil
}

// Validate checks all invariants on a task.
func (t Task) Validate() error {
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if !t.Priority.IsValid() {
		return ErrInvalidPriority
	}
	return ValidateEstimate(t.EstimatedTime)
}
