// Package schedule implements the greedy study-schedule allocator.
//
// Generate converts the incomplete task backlog into an ordered run of
// study sessions under a daily time budget. The allocation is greedy:
// high-priority tasks go first, ties break on earlier due dates, and
// each task yields at most one session per run. A fixed 15-minute break
// separates consecutive sessions, and nothing shorter than 25 minutes
// is ever scheduled.
package schedule

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/amonks/studyflow/session"
	"github.com/amonks/studyflow/subject"
	"github.com/amonks/studyflow/task"
)

// BreakMinutes is the rest inserted between consecutive sessions.
const BreakMinutes = 15

// Generate produces a fresh schedule for the incomplete backlog,
// starting at start and spending at most availableHoursPerDay hours.
//
// A task whose estimate exceeds the remaining budget is clipped to the
// budget; if the clipped length falls under the 25-minute minimum the
// task is skipped without consuming budget. Splitting one task across
// several sessions is deliberately not done: the remainder of an
// oversized task waits for the next regeneration.
//
// An empty backlog or a non-positive budget yields an empty schedule.
// Malformed input (non-finite budget, non-positive estimates, tasks
// referencing subjects missing from the catalog) is rejected.
func Generate(tasks []task.Task, subjects []subject.Subject, availableHoursPerDay float64, start time.Time) ([]session.StudySession, error) {
	if math.IsNaN(availableHoursPerDay) || math.IsInf(availableHoursPerDay, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBudget, availableHoursPerDay)
	}
	if availableHoursPerDay <= 0 {
		return nil, nil
	}

	backlog, err := pendingBacklog(tasks, subjects)
	if err != nil {
		return nil, err
	}
	if len(backlog) == 0 {
		return nil, nil
	}

	sortBacklog(backlog)

	var sessions []session.StudySession
	currentTime := start
	remainingMinutes := availableHoursPerDay * 60

	for _, t := range backlog {
		if remainingMinutes <= 0 {
			break
		}

		minutes := t.EstimatedTime
		if budget := int(remainingMinutes); minutes > budget {
			minutes = budget
		}
		if minutes < session.MinDurationMinutes {
			// Too short to be worth sitting down for. The task stays in
			// the backlog and is reconsidered when the budget resets.
			continue
		}

		sessions = append(sessions, session.StudySession{
			ID:            uuid.NewString(),
			TaskID:        t.ID,
			Title:         t.Title,
			Subject:       t.Subject,
			Duration:      minutes,
			ScheduledTime: currentTime,
			Completed:     false,
			Priority:      t.Priority,
			Type:          session.TypeStudy,
		})

		currentTime = currentTime.Add(time.Duration(minutes+BreakMinutes) * time.Minute)
		remainingMinutes -= float64(minutes)
	}

	return sessions, nil
}

// pendingBacklog filters out completed tasks and validates the rest
// against the subject catalog.
func pendingBacklog(tasks []task.Task, subjects []subject.Subject) ([]task.Task, error) {
	catalog := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		catalog[s.ID] = true
	}

	var backlog []task.Task
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		if err := task.ValidateEstimate(t.EstimatedTime); err != nil {
			return nil, fmt.Errorf("task %s: %w", t.ID, err)
		}
		if !catalog[t.Subject.ID] {
			return nil, fmt.Errorf("task %s: %w: %s", t.ID, ErrUnknownSubject, t.Subject.ID)
		}
		backlog = append(backlog, t)
	}

	return backlog, nil
}

// sortBacklog orders tasks by priority descending, then due date
// ascending. The sort is stable: equal priority and due date keeps
// input order.
func sortBacklog(backlog []task.Task) {
	sort.SliceStable(backlog, func(i, j int) bool {
		iw, jw := backlog[i].Priority.Weight(), backlog[j].Priority.Weight()
		if iw != jw {
			return iw > jw
		}
		return backlog[i].DueDate.Before(backlog[j].DueDate)
	})
}
