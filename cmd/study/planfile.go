package main

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/amonks/studyflow/analytics"
	"github.com/amonks/studyflow/internal/config"
	"github.com/amonks/studyflow/planner"
	"github.com/amonks/studyflow/session"
	"github.com/amonks/studyflow/subject"
	"github.com/amonks/studyflow/task"
)

// planFile is the user-authored TOML description of subjects, tasks,
// and past sessions. It is input, not a database: the planner is
// rebuilt from it on every invocation.
type planFile struct {
	HoursPerDay float64 `toml:"hours-per-day"`

	Subjects []planSubject `toml:"subjects"`
	Tasks    []planTask    `toml:"tasks"`
	Sessions []planSession `toml:"sessions"`
}

type planSubject struct {
	Name        string  `toml:"name"`
	Color       string  `toml:"color"`
	TotalHours  float64 `toml:"total-hours"`
	TargetHours float64 `toml:"target-hours"`
	Description string  `toml:"description"`
}

type planTask struct {
	Title            string `toml:"title"`
	Subject          string `toml:"subject"`
	Due              string `toml:"due"`
	Priority         string `toml:"priority"`
	EstimatedMinutes int    `toml:"estimated-minutes"`
	Completed        bool   `toml:"completed"`
	Description      string `toml:"description"`
}

type planSession struct {
	Title         string `toml:"title"`
	Subject       string `toml:"subject"`
	Duration      int    `toml:"duration"`
	Scheduled     string `toml:"scheduled"`
	Completed     bool   `toml:"completed"`
	ActualMinutes int    `toml:"actual-minutes"`
	Type          string `toml:"type"`
	Notes         string `toml:"notes"`
}

// loadPlanner reads the plan file and builds a planner from it.
// Priority order for the daily budget: --hours flag, plan file,
// studyflow.toml config, default.
func loadPlanner(path string, hoursFlag float64, now func() time.Time) (*planner.Planner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}

	var plan planFile
	if _, err := toml.Decode(string(data), &plan); err != nil {
		return nil, fmt.Errorf("parse plan file %s: %w", path, err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}

	hours := cfg.Planner.HoursPerDay
	if plan.HoursPerDay > 0 {
		hours = plan.HoursPerDay
	}
	if hoursFlag > 0 {
		hours = hoursFlag
	}

	p := planner.New(planner.Options{
		HoursPerDay: hours,
		Goals: analytics.Goals{
			WeeklyMinutes: cfg.Goals.WeeklyMinutes,
			DailyMinutes:  cfg.Goals.DailyMinutes,
		},
		Now: now,
	})

	subjectIDs := make(map[string]string, len(plan.Subjects))
	for _, ps := range plan.Subjects {
		created, err := p.AddSubject(ps.Name, planner.SubjectOptions{
			Color:       ps.Color,
			TotalHours:  ps.TotalHours,
			TargetHours: ps.TargetHours,
			Description: ps.Description,
		})
		if err != nil {
			return nil, fmt.Errorf("subject %q: %w", ps.Name, err)
		}
		subjectIDs[ps.Name] = created.ID
	}

	dates := newDateParser()
	for _, pt := range plan.Tasks {
		subjectID, ok := subjectIDs[pt.Subject]
		if !ok {
			return nil, fmt.Errorf("task %q: unknown subject %q", pt.Title, pt.Subject)
		}

		due, err := parseDate(dates, pt.Due, now())
		if err != nil {
			return nil, fmt.Errorf("task %q: %w", pt.Title, err)
		}

		created, err := p.AddTask(pt.Title, planner.TaskOptions{
			SubjectID:     subjectID,
			DueDate:       due,
			Priority:      task.Priority(pt.Priority),
			EstimatedTime: pt.EstimatedMinutes,
			Description:   pt.Description,
		})
		if err != nil {
			return nil, fmt.Errorf("task %q: %w", pt.Title, err)
		}
		if pt.Completed {
			if _, err := p.CompleteTask(created.ID); err != nil {
				return nil, fmt.Errorf("task %q: %w", pt.Title, err)
			}
		}
	}

	for _, ps := range plan.Sessions {
		subjectID, ok := subjectIDs[ps.Subject]
		if !ok {
			return nil, fmt.Errorf("session %q: unknown subject %q", ps.Title, ps.Subject)
		}
		sub, ok := subjectByID(p, subjectID)
		if !ok {
			return nil, fmt.Errorf("session %q: unknown subject %q", ps.Title, ps.Subject)
		}

		scheduled, err := parseDate(dates, ps.Scheduled, now())
		if err != nil {
			return nil, fmt.Errorf("session %q: %w", ps.Title, err)
		}

		s := session.StudySession{
			ID:            uuid.NewString(),
			Title:         ps.Title,
			Subject:       sub,
			Duration:      ps.Duration,
			ScheduledTime: scheduled,
			Completed:     ps.Completed,
			Notes:         ps.Notes,
			Type:          session.Type(ps.Type),
		}
		if ps.ActualMinutes > 0 {
			actual := ps.ActualMinutes
			s.ActualDuration = &actual
		}
		if err := p.RecordSession(s); err != nil {
			return nil, fmt.Errorf("session %q: %w", ps.Title, err)
		}
	}

	// Logged history may change the pending schedule's starting state.
	if err := p.Reschedule(); err != nil {
		return nil, err
	}

	return p, nil
}

func subjectByID(p *planner.Planner, id string) (subject.Subject, bool) {
	for _, s := range p.Subjects() {
		if s.ID == id {
			return s, true
		}
	}
	return subject.Subject{}, false
}

// newDateParser builds a natural-language date parser with English rules.
func newDateParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// dateLayouts are the fixed formats tried before natural language.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseDate parses a date string, trying fixed layouts first and
// falling back to natural language ("tomorrow 5pm", "next friday").
// Fixed layouts are read as local wall-clock times, the same location
// the natural-language parser uses, so calendar-day arithmetic
// downstream never mixes locations.
func parseDate(w *when.Parser, value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}

	result, err := w.Parse(value, now)
	if err == nil && result != nil {
		return result.Time, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
