package analytics

import (
	"testing"
	"time"

	"github.com/amonks/studyflow/session"
)

func sessionOnDay(day int, completed bool) session.StudySession {
	return session.StudySession{
		ID:            "day-" + time.Date(2026, 3, day, 10, 0, 0, 0, time.UTC).Format("02"),
		Duration:      60,
		ScheduledTime: time.Date(2026, 3, day, 10, 0, 0, 0, time.UTC),
		Completed:     completed,
	}
}

func TestStreakInfo_Empty(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	streak := StreakInfo(nil, now)
	if streak.Current != 0 || streak.Longest != 0 {
		t.Errorf("expected {0,0} for empty history, got {%d,%d}", streak.Current, streak.Longest)
	}
	if streak.LastStudyDate != nil {
		t.Errorf("expected nil last study date, got %v", streak.LastStudyDate)
	}
}

func TestStreakInfo_GapSplitsLongest(t *testing.T) {
	// Days 1,2,3 then a gap at day 4, then 5,6.
	sessions := []session.StudySession{
		sessionOnDay(1, true),
		sessionOnDay(2, true),
		sessionOnDay(3, true),
		sessionOnDay(5, true),
		sessionOnDay(6, true),
	}
	now := time.Date(2026, 3, 6, 20, 0, 0, 0, time.UTC)

	streak := StreakInfo(sessions, now)
	if streak.Longest != 3 {
		t.Errorf("expected longest 3, got %d", streak.Longest)
	}
	// Days 5 and 6 are consecutive and end today.
	if streak.Current != 2 {
		t.Errorf("expected current 2, got %d", streak.Current)
	}
}

func TestStreakInfo_CurrentRequiresToday(t *testing.T) {
	sessions := []session.StudySession{
		sessionOnDay(5, true),
		sessionOnDay(6, true),
	}
	// Two days after the last session.
	now := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)

	streak := StreakInfo(sessions, now)
	if streak.Current != 0 {
		t.Errorf("expected current 0 when today has no session, got %d", streak.Current)
	}
	if streak.Longest != 2 {
		t.Errorf("expected longest 2, got %d", streak.Longest)
	}
}

func TestStreakInfo_SameDaySessionsCountOnce(t *testing.T) {
	sessions := []session.StudySession{
		sessionOnDay(1, true),
		sessionOnDay(1, true),
		sessionOnDay(2, true),
	}
	now := time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC)

	streak := StreakInfo(sessions, now)
	if streak.Longest != 2 {
		t.Errorf("expected longest 2, got %d", streak.Longest)
	}
	if streak.Current != 2 {
		t.Errorf("expected current 2, got %d", streak.Current)
	}
}

func TestStreakInfo_IgnoresIncomplete(t *testing.T) {
	sessions := []session.StudySession{
		sessionOnDay(1, true),
		sessionOnDay(2, false),
		sessionOnDay(3, true),
	}
	now := time.Date(2026, 3, 3, 18, 0, 0, 0, time.UTC)

	streak := StreakInfo(sessions, now)
	if streak.Longest != 1 {
		t.Errorf("expected longest 1 with a gap from the incomplete day, got %d", streak.Longest)
	}
	if streak.Current != 1 {
		t.Errorf("expected current 1, got %d", streak.Current)
	}
}

func TestStreakInfo_UnsortedInput(t *testing.T) {
	sessions := []session.StudySession{
		sessionOnDay(3, true),
		sessionOnDay(1, true),
		sessionOnDay(2, true),
	}
	now := time.Date(2026, 3, 3, 22, 0, 0, 0, time.UTC)

	streak := StreakInfo(sessions, now)
	if streak.Longest != 3 {
		t.Errorf("expected longest 3 regardless of input order, got %d", streak.Longest)
	}
	if streak.Current != 3 {
		t.Errorf("expected current 3, got %d", streak.Current)
	}
}

func TestStreakInfo_AdjacentAcrossMidnight(t *testing.T) {
	sessions := []session.StudySession{
		{ID: "late", Duration: 30, Completed: true,
			ScheduledTime: time.Date(2026, 3, 1, 23, 50, 0, 0, time.UTC)},
		{ID: "early", Duration: 30, Completed: true,
			ScheduledTime: time.Date(2026, 3, 2, 0, 10, 0, 0, time.UTC)},
	}
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	streak := StreakInfo(sessions, now)
	if streak.Longest != 2 {
		t.Errorf("expected calendar-adjacent days to form a streak of 2, got %d", streak.Longest)
	}
}

func TestStreakInfo_LastStudyDate(t *testing.T) {
	latest := time.Date(2026, 3, 6, 10, 0, 0, 0, time.UTC)
	sessions := []session.StudySession{
		sessionOnDay(5, true),
		{ID: "latest", Duration: 60, Completed: true, ScheduledTime: latest},
		sessionOnDay(2, false),
	}
	now := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)

	streak := StreakInfo(sessions, now)
	if streak.LastStudyDate == nil || !streak.LastStudyDate.Equal(latest) {
		t.Errorf("expected last study date %v, got %v", latest, streak.LastStudyDate)
	}
}
