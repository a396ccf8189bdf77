package task

import (
	"errors"
	"strings"
	"testing"
)

func TestPriority_IsValid(t *testing.T) {
	for _, p := range ValidPriorities() {
		if !p.IsValid() {
			t.Errorf("expected %q to be valid", p)
		}
	}
	if Priority("urgent").IsValid() {
		t.Error("expected 'urgent' to be invalid")
	}
	if Priority("").IsValid() {
		t.Error("expected empty priority to be invalid")
	}
}

func TestPriority_Weight(t *testing.T) {
	if PriorityHigh.Weight() <= PriorityMedium.Weight() {
		t.Error("expected high to outweigh medium")
	}
	if PriorityMedium.Weight() <= PriorityLow.Weight() {
		t.Error("expected medium to outweigh low")
	}
	if Priority("bogus").Weight() != 0 {
		t.Error("expected unknown priority weight 0")
	}
}

func TestNormalizePriority(t *testing.T) {
	got, err := NormalizePriority(Priority(" HIGH "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != PriorityHigh {
		t.Errorf("expected high, got %q", got)
	}

	got, err = NormalizePriority("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != PriorityMedium {
		t.Errorf("expected default medium, got %q", got)
	}

	if _, err := NormalizePriority("urgent"); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestValidateTitle(t *testing.T) {
	if err := ValidateTitle("Complete Calculus Problem Set 3"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateTitle("   "); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
	if err := ValidateTitle(strings.Repeat("x", MaxTitleLength+1)); !errors.Is(err, ErrTitleTooLong) {
		t.Errorf("expected ErrTitleTooLong, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := Task{Title: "Study Quantum Mechanics Chapter 4", Priority: PriorityMedium, EstimatedTime: 90}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error for valid task: %v", err)
	}

	noEstimate := valid
	noEstimate.EstimatedTime = 0
	if err := noEstimate.Validate(); !errors.Is(err, ErrInvalidEstimate) {
		t.Errorf("expected ErrInvalidEstimate, got %v", err)
	}

	badPriority := valid
	badPriority.Priority = "critical"
	if err := badPriority.Validate(); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}
}
