package subject

import (
	internalstrings "github.com/amonks/studyflow/internal/strings"
)

// MaxNameLength is the maximum allowed length for a subject name.
const MaxNameLength = 200

// ValidateName checks that a subject name is non-empty and within limits.
func ValidateName(name string) error {
	name = internalstrings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// ValidateColor checks that a color is a "#RRGGBB" hex string.
// An empty color is allowed; the caller applies a default.
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if len(color) != 7 || color[0] != '#' {
		return ErrInvalidColor
	}
	for _, c := range color[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return ErrInvalidColor
		}
	}
	return nil
}

// ValidateHours checks that an hour count is non-negative.
func ValidateHours(hours float64) error {
	if hours < 0 {
		return ErrNegativeHours
	}
	return nil
}

// Validate checks all invariants on a subject.
func (s Subject) Validate() error {
	if err := ValidateName(s.Name); err != nil {
		return err
	}
	if err := ValidateColor(s.Color); err != nil {
		return err
	}
	if err := ValidateHours(s.TotalHours); err != nil {
		return err
	}
	return ValidateHours(s.TargetHours)
}
