package analytics

import (
	"sort"
	"time"

	"github.com/amonks/studyflow/session"
)

// Streak reports consecutive-day study activity.
type Streak struct {
	// Current is the run of consecutive days ending today that each
	// contain a completed session. Zero when nothing was studied today.
	Current int `json:"current"`

	// Longest is the longest such run anywhere in the history.
	Longest int `json:"longest"`

	// LastStudyDate is the most recent completed session's scheduled
	// time, nil when nothing has been completed.
	LastStudyDate *time.Time `json:"last_study_date,omitempty"`
}

// StreakInfo computes current and longest consecutive-day streaks over
// completed sessions.
//
// Days are compared as calendar days in the timestamps' own locations,
// not as raw 24-hour spans, so a session at 23:50 and one at 00:10 the
// next day count as adjacent days.
func StreakInfo(sessions []session.StudySession, now time.Time) Streak {
	days := completedDays(sessions)
	if len(days) == 0 {
		return Streak{}
	}

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i-1], days[i]) == 1 {
			run++
		} else {
			if run > longest {
				longest = run
			}
			run = 1
		}
	}
	if run > longest {
		longest = run
	}

	today := dayOf(now)
	current := 0
	for i := len(days) - 1; i >= 0; i-- {
		diff := daysBetween(days[i], today)
		if diff == current {
			current++
		} else if diff > current {
			break
		}
	}

	last := lastCompleted(sessions)
	return Streak{Current: current, Longest: longest, LastStudyDate: last}
}

// completedDays returns the distinct calendar days containing completed
// sessions, ascending.
func completedDays(sessions []session.StudySession) []time.Time {
	seen := make(map[time.Time]bool)
	var days []time.Time
	for _, s := range sessions {
		if !s.Completed {
			continue
		}
		day := dayOf(s.ScheduledTime)
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

func lastCompleted(sessions []session.StudySession) *time.Time {
	var last *time.Time
	for i := range sessions {
		if !sessions[i].Completed {
			continue
		}
		if last == nil || sessions[i].ScheduledTime.After(*last) {
			t := sessions[i].ScheduledTime
			last = &t
		}
	}
	return last
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts whole calendar days from a to b. Rounding absorbs
// the 23- and 25-hour days around daylight-saving transitions.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Round(24*time.Hour) / (24 * time.Hour))
}
