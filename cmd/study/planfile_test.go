package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writePlanFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "study.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write plan file: %v", err)
	}
	return path
}

const testPlan = `
hours-per-day = 0.5

[[subjects]]
name = "Math"

[[tasks]]
title = "Integrals"
subject = "Math"
due = "2026-03-05"
priority = "high"
estimated-minutes = 60
`

func TestLoadPlannerBuildsCollections(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writePlanFile(t, testPlan)
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	p, err := loadPlanner(path, 0, func() time.Time { return now })
	if err != nil {
		t.Fatalf("loadPlanner: %v", err)
	}

	if got := len(p.Subjects()); got != 1 {
		t.Fatalf("expected 1 subject, got %d", got)
	}
	if got := len(p.Tasks()); got != 1 {
		t.Fatalf("expected 1 task, got %d", got)
	}

	// The plan file's half-hour budget clips the 60-minute task.
	sessions := p.Sessions()
	if len(sessions) != 1 {
		t.Fatalf("expected 1 scheduled session, got %d", len(sessions))
	}
	if sessions[0].Duration != 30 {
		t.Errorf("expected 30-minute session, got %d", sessions[0].Duration)
	}
}

func TestLoadPlannerHoursFlagOverridesPlanFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writePlanFile(t, testPlan)
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	p, err := loadPlanner(path, 2, func() time.Time { return now })
	if err != nil {
		t.Fatalf("loadPlanner: %v", err)
	}

	sessions := p.Sessions()
	if len(sessions) != 1 {
		t.Fatalf("expected 1 scheduled session, got %d", len(sessions))
	}
	if sessions[0].Duration != 60 {
		t.Errorf("expected full 60-minute session, got %d", sessions[0].Duration)
	}
}

func TestLoadPlannerRejectsUnknownSubject(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writePlanFile(t, `
[[subjects]]
name = "Math"

[[tasks]]
title = "Read chapter 4"
subject = "Chemistry"
estimated-minutes = 30
`)

	if _, err := loadPlanner(path, 0, time.Now); err == nil {
		t.Fatal("expected error for unknown subject")
	}
}

func TestLoadPlannerMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := loadPlanner(filepath.Join(t.TempDir(), "missing.toml"), 0, time.Now); err == nil {
		t.Fatal("expected error for missing plan file")
	}
}

func TestLoadPlannerRecordsSessions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writePlanFile(t, `
[[subjects]]
name = "Math"

[[sessions]]
title = "Warmup drills"
subject = "Math"
duration = 30
scheduled = "2026-03-01 10:00"
completed = true
actual-minutes = 25
`)

	p, err := loadPlanner(path, 0, time.Now)
	if err != nil {
		t.Fatalf("loadPlanner: %v", err)
	}

	sessions := p.Sessions()
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	s := sessions[0]
	if !s.Completed {
		t.Error("expected session to be completed")
	}
	if s.ActualDuration == nil || *s.ActualDuration != 25 {
		t.Errorf("unexpected actual duration: %v", s.ActualDuration)
	}
	if got := s.ScheduledTime; got.Day() != 1 || got.Hour() != 10 {
		t.Errorf("unexpected scheduled time: %v", got)
	}
}

func TestParseDateLayouts(t *testing.T) {
	w := newDateParser()
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"2026-03-05", time.Date(2026, time.March, 5, 0, 0, 0, 0, time.Local)},
		{"2026-03-05 14:30", time.Date(2026, time.March, 5, 14, 30, 0, 0, time.Local)},
		{"2026-03-05T14:30:00", time.Date(2026, time.March, 5, 14, 30, 0, 0, time.Local)},
		{"", now},
	}
	for _, tt := range tests {
		got, err := parseDate(w, tt.input, now)
		if err != nil {
			t.Errorf("parseDate(%q): %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseDate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseDateFixedLayoutsUseLocalTime(t *testing.T) {
	// Fixed-layout dates and natural-language dates must land in the
	// same location, or day-boundary math downstream drifts.
	w := newDateParser()
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.Local)

	fixed, err := parseDate(w, "2026-03-05 14:30", now)
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if fixed.Location() != time.Local {
		t.Errorf("expected local location for fixed layout, got %v", fixed.Location())
	}

	natural, err := parseDate(w, "tomorrow", now)
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if natural.Location() != fixed.Location() {
		t.Errorf("expected one location for both parse paths, got %v and %v",
			natural.Location(), fixed.Location())
	}
}

func TestParseDateNaturalLanguage(t *testing.T) {
	w := newDateParser()
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	got, err := parseDate(w, "tomorrow", now)
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if got.Day() != 3 {
		t.Errorf("expected March 3, got %v", got)
	}
}

func TestParseDateUnrecognized(t *testing.T) {
	w := newDateParser()

	if _, err := parseDate(w, "not a date at all xyzzy", time.Now()); err == nil {
		t.Fatal("expected error for unrecognized date")
	}
}
