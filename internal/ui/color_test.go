package ui

import "testing"

func TestHighlightID_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := HighlightID("abcd1234", 3); got != "abcd1234" {
		t.Errorf("expected plain ID when color disabled, got %q", got)
	}
}

func TestHighlightID_InvalidPrefix(t *testing.T) {
	if got := HighlightID("abcd", 0); got != "abcd" {
		t.Errorf("expected plain ID for zero prefix, got %q", got)
	}
	if got := HighlightID("abcd", 9); got != "abcd" {
		t.Errorf("expected plain ID for oversized prefix, got %q", got)
	}
	if got := HighlightID("", 2); got != "" {
		t.Errorf("expected empty ID passthrough, got %q", got)
	}
}
