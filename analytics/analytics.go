package analytics

import (
	"time"

	"github.com/amonks/studyflow/session"
	"github.com/amonks/studyflow/subject"
)

// Goals holds the study targets analytics are reported against.
type Goals struct {
	// WeeklyMinutes is the weekly study goal.
	WeeklyMinutes int `json:"weekly_minutes"`

	// DailyMinutes is the expected daily average.
	DailyMinutes int `json:"daily_minutes"`
}

// Analytics is the derived dashboard view of the session history. It is
// recomputed from the collections on demand and never stored.
type Analytics struct {
	// TotalStudyTime is the minutes spent in completed sessions, using
	// actual durations where recorded and planned durations otherwise.
	TotalStudyTime int `json:"total_study_time"`

	// WeeklyGoal is the configured weekly target in minutes.
	WeeklyGoal int `json:"weekly_goal"`

	// DailyAverage is the configured daily average in minutes.
	DailyAverage int `json:"daily_average"`

	// SubjectBreakdown maps subject ID to accumulated minutes.
	SubjectBreakdown map[string]int `json:"subject_breakdown"`

	// ProductivityScore is the 0-100 blend of completion and efficiency.
	ProductivityScore int `json:"productivity_score"`

	// Streak reports consecutive-day activity.
	Streak Streak `json:"streak"`
}

// TotalStudyTime sums effective durations over completed sessions.
func TotalStudyTime(sessions []session.StudySession) int {
	total := 0
	for _, s := range sessions {
		if s.Completed {
			total += s.EffectiveDuration()
		}
	}
	return total
}

// SubjectBreakdown maps each subject to its accumulated study minutes.
func SubjectBreakdown(subjects []subject.Subject) map[string]int {
	breakdown := make(map[string]int, len(subjects))
	for _, s := range subjects {
		breakdown[s.ID] = int(s.TotalHours * 60)
	}
	return breakdown
}

// Compute assembles the full analytics view from the current
// collections.
func Compute(sessions []session.StudySession, subjects []subject.Subject, goals Goals, now time.Time) Analytics {
	return Analytics{
		TotalStudyTime:    TotalStudyTime(sessions),
		WeeklyGoal:        goals.WeeklyMinutes,
		DailyAverage:      goals.DailyMinutes,
		SubjectBreakdown:  SubjectBreakdown(subjects),
		ProductivityScore: ProductivityScore(sessions),
		Streak:            StreakInfo(sessions, now),
	}
}
