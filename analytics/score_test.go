package analytics

import (
	"testing"
	"time"

	"github.com/amonks/studyflow/session"
)

func intPtr(v int) *int { return &v }

func makeSession(id string, completed bool, duration int, actual *int) session.StudySession {
	return session.StudySession{
		ID:             id,
		Title:          "Session " + id,
		Duration:       duration,
		ScheduledTime:  time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		Completed:      completed,
		ActualDuration: actual,
	}
}

func TestProductivityScore_Empty(t *testing.T) {
	if got := ProductivityScore(nil); got != 0 {
		t.Errorf("expected 0 for empty history, got %d", got)
	}
}

func TestProductivityScore_AllCompletedOnTime(t *testing.T) {
	sessions := []session.StudySession{
		makeSession("s1", true, 60, intPtr(60)),
		makeSession("s2", true, 45, intPtr(45)),
		makeSession("s3", true, 90, intPtr(90)),
	}

	if got := ProductivityScore(sessions); got != 100 {
		t.Errorf("expected 100 for all-completed on-time history, got %d", got)
	}
}

func TestProductivityScore_NothingCompleted(t *testing.T) {
	sessions := []session.StudySession{
		makeSession("s1", false, 60, nil),
		makeSession("s2", false, 45, nil),
	}

	if got := ProductivityScore(sessions); got != 0 {
		t.Errorf("expected 0 with nothing completed, got %d", got)
	}
}

func TestProductivityScore_MissingActualGetsFullCredit(t *testing.T) {
	sessions := []session.StudySession{
		makeSession("s1", true, 60, nil),
	}

	if got := ProductivityScore(sessions); got != 100 {
		t.Errorf("expected 100 when actual duration is missing, got %d", got)
	}
}

func TestProductivityScore_OverrunIsCapped(t *testing.T) {
	// Overrunning the plan must not score higher than finishing on time.
	onTime := []session.StudySession{makeSession("s1", true, 60, intPtr(60))}
	overrun := []session.StudySession{makeSession("s1", true, 60, intPtr(120))}

	if ProductivityScore(overrun) != ProductivityScore(onTime) {
		t.Errorf("expected overrun capped at full credit: %d vs %d",
			ProductivityScore(overrun), ProductivityScore(onTime))
	}
}

func TestProductivityScore_Blend(t *testing.T) {
	// Half completed, and the completed half ran at 50% efficiency:
	// 0.5*0.6 + 0.5*0.4 = 0.5 -> 50.
	sessions := []session.StudySession{
		makeSession("s1", true, 60, intPtr(30)),
		makeSession("s2", false, 60, nil),
	}

	if got := ProductivityScore(sessions); got != 50 {
		t.Errorf("expected 50, got %d", got)
	}
}

func TestProductivityScore_Bounds(t *testing.T) {
	histories := [][]session.StudySession{
		{makeSession("s1", true, 0, intPtr(10))},
		{makeSession("s1", true, 60, intPtr(1))},
		{makeSession("s1", false, 60, nil), makeSession("s2", true, 60, intPtr(500))},
	}

	for i, sessions := range histories {
		got := ProductivityScore(sessions)
		if got < 0 || got > 100 {
			t.Errorf("history %d: score %d out of [0,100]", i, got)
		}
	}
}
