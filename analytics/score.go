// Package analytics derives productivity metrics from session history.
//
// Everything here is a pure function over the session list; nothing is
// stored. The caller recomputes on every render.
package analytics

import (
	"math"

	"github.com/amonks/studyflow/session"
)

// Weights for the productivity blend: finishing sessions counts more
// than finishing them close to the planned duration.
const (
	completionWeight = 0.6
	efficiencyWeight = 0.4
)

// ProductivityScore returns a 0-100 score blending completion rate and
// time-efficiency.
//
// Efficiency credits each completed session with
// min(actual/planned, 1); overrunning a session loses credit, finishing
// early never earns more than full credit. Completed sessions without a
// recorded actual duration get full credit.
func ProductivityScore(sessions []session.StudySession) int {
	if len(sessions) == 0 {
		return 0
	}

	var completed []session.StudySession
	for _, s := range sessions {
		if s.Completed {
			completed = append(completed, s)
		}
	}

	completionRate := float64(len(completed)) / float64(len(sessions))

	efficiencyScore := 0.0
	if len(completed) > 0 {
		total := 0.0
		for _, s := range completed {
			total += sessionEfficiency(s)
		}
		efficiencyScore = total / float64(len(completed))
	}

	return int(math.Round((completionRate*completionWeight + efficiencyScore*efficiencyWeight) * 100))
}

func sessionEfficiency(s session.StudySession) float64 {
	if s.ActualDuration == nil || s.Duration <= 0 {
		return 1
	}
	efficiency := float64(*s.ActualDuration) / float64(s.Duration)
	if efficiency > 1 {
		return 1
	}
	return efficiency
}
