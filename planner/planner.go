// Package planner owns the subject, task, and session collections and
// keeps the derived schedule current.
//
// The planner is the stateful caller around the pure scheduling and
// analytics functions: every task mutation regenerates the pending
// schedule synchronously, and analytics are recomputed on demand from
// the current collections. Completed sessions are never discarded by
// regeneration; they are keyed to their originating task by ID.
//
// Nothing here persists. The planner lives for the duration of the
// process and is rebuilt from user input on the next run.
package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/amonks/studyflow/analytics"
	"github.com/amonks/studyflow/internal/ids"
	"github.com/amonks/studyflow/schedule"
	"github.com/amonks/studyflow/session"
	"github.com/amonks/studyflow/subject"
	"github.com/amonks/studyflow/task"
)

// DefaultColor is assigned to subjects created without a color.
const DefaultColor = "#3B82F6"

// Options configures a new planner.
type Options struct {
	// HoursPerDay is the daily scheduling budget. Defaults to 8.
	HoursPerDay float64

	// Goals are the analytics targets. Zero values are allowed and mean
	// "no goal".
	Goals analytics.Goals

	// Now supplies the current time. Defaults to time.Now. Tests inject
	// a fixed clock here.
	Now func() time.Time
}

// Planner holds the in-memory study state.
type Planner struct {
	hoursPerDay float64
	goals       analytics.Goals
	now         func() time.Time

	subjects []subject.Subject
	tasks    []task.Task
	sessions []session.StudySession
}

// New creates an empty planner.
func New(opts Options) *Planner {
	if opts.HoursPerDay == 0 {
		opts.HoursPerDay = 8
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Planner{
		hoursPerDay: opts.HoursPerDay,
		goals:       opts.Goals,
		now:         opts.Now,
	}
}

// Subjects returns a copy of the subject catalog.
func (p *Planner) Subjects() []subject.Subject {
	return append([]subject.Subject(nil), p.subjects...)
}

// Tasks returns a copy of the task backlog.
func (p *Planner) Tasks() []task.Task {
	return append([]task.Task(nil), p.tasks...)
}

// Sessions returns a copy of the session list.
func (p *Planner) Sessions() []session.StudySession {
	return append([]session.StudySession(nil), p.sessions...)
}

// SubjectOptions configures a new subject.
type SubjectOptions struct {
	// Color is the display color. Defaults to DefaultColor.
	Color string

	// TotalHours seeds already-accumulated study time.
	TotalHours float64

	// TargetHours is the study goal for this subject.
	TargetHours float64

	// Description provides additional context.
	Description string
}

// AddSubject creates a new subject in the catalog.
func (p *Planner) AddSubject(name string, opts SubjectOptions) (*subject.Subject, error) {
	if opts.Color == "" {
		opts.Color = DefaultColor
	}

	now := p.now()
	s := subject.Subject{
		ID:          p.newSubjectID(name, now),
		Name:        name,
		Color:       opts.Color,
		TotalHours:  opts.TotalHours,
		TargetHours: opts.TargetHours,
		Description: opts.Description,
		CreatedAt:   now,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	p.subjects = append(p.subjects, s)
	return &s, nil
}

// UpdateSubjectOptions configures fields to update on a subject.
// Nil pointers mean "don't update this field".
type UpdateSubjectOptions struct {
	Name        *string
	Color       *string
	TotalHours  *float64
	TargetHours *float64
	Description *string
}

// UpdateSubject updates a subject in the catalog. Existing task and
// session snapshots keep the old values.
func (p *Planner) UpdateSubject(id string, opts UpdateSubjectOptions) (*subject.Subject, error) {
	idx := p.subjectIndex(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", subject.ErrSubjectNotFound, id)
	}

	updated := p.subjects[idx]
	if opts.Name != nil {
		updated.Name = *opts.Name
	}
	if opts.Color != nil {
		updated.Color = *opts.Color
	}
	if opts.TotalHours != nil {
		updated.TotalHours = *opts.TotalHours
	}
	if opts.TargetHours != nil {
		updated.TargetHours = *opts.TargetHours
	}
	if opts.Description != nil {
		updated.Description = *opts.Description
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	p.subjects[idx] = updated
	return &updated, nil
}

// DeleteSubject removes a subject and cascades to every task and
// session referencing it, then regenerates the schedule.
func (p *Planner) DeleteSubject(id string) error {
	idx := p.subjectIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", subject.ErrSubjectNotFound, id)
	}

	p.subjects = append(p.subjects[:idx], p.subjects[idx+1:]...)

	kept := p.tasks[:0]
	for _, t := range p.tasks {
		if t.Subject.ID != id {
			kept = append(kept, t)
		}
	}
	p.tasks = kept

	keptSessions := p.sessions[:0]
	for _, s := range p.sessions {
		if s.Subject.ID != id {
			keptSessions = append(keptSessions, s)
		}
	}
	p.sessions = keptSessions

	return p.Reschedule()
}

// TaskOptions configures a new task.
type TaskOptions struct {
	// SubjectID names the owning subject; the task stores a snapshot of
	// it taken now.
	SubjectID string

	// DueDate is when the task should be finished.
	DueDate time.Time

	// Priority defaults to medium when empty.
	Priority task.Priority

	// EstimatedTime is the expected effort in minutes. Required.
	EstimatedTime int

	// Description provides additional context.
	Description string
}

// AddTask creates a task and regenerates the schedule.
func (p *Planner) AddTask(title string, opts TaskOptions) (*task.Task, error) {
	if err := task.ValidateTitle(title); err != nil {
		return nil, err
	}
	priority, err := task.NormalizePriority(opts.Priority)
	if err != nil {
		return nil, err
	}
	if err := task.ValidateEstimate(opts.EstimatedTime); err != nil {
		return nil, err
	}

	idx := p.subjectIndex(opts.SubjectID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", subject.ErrSubjectNotFound, opts.SubjectID)
	}

	now := p.now()
	t := task.Task{
		ID:            p.newTaskID(title, now),
		Title:         title,
		Subject:       p.subjects[idx],
		DueDate:       opts.DueDate,
		Priority:      priority,
		EstimatedTime: opts.EstimatedTime,
		Description:   opts.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	p.tasks = append(p.tasks, t)
	if err := p.Reschedule(); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTaskOptions configures fields to update on a task.
// Nil pointers mean "don't update this field".
type UpdateTaskOptions struct {
	Title         *string
	DueDate       *time.Time
	Priority      *task.Priority
	Completed     *bool
	EstimatedTime *int
	Description   *string
}

// UpdateTask updates a task and regenerates the schedule.
func (p *Planner) UpdateTask(id string, opts UpdateTaskOptions) (*task.Task, error) {
	idx := p.taskIndex(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", task.ErrTaskNotFound, id)
	}

	updated := p.tasks[idx]
	if opts.Title != nil {
		updated.Title = *opts.Title
	}
	if opts.DueDate != nil {
		updated.DueDate = *opts.DueDate
	}
	if opts.Priority != nil {
		priority, err := task.NormalizePriority(*opts.Priority)
		if err != nil {
			return nil, err
		}
		updated.Priority = priority
	}
	if opts.Completed != nil {
		updated.Completed = *opts.Completed
	}
	if opts.EstimatedTime != nil {
		updated.EstimatedTime = *opts.EstimatedTime
	}
	if opts.Description != nil {
		updated.Description = *opts.Description
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	updated.UpdatedAt = p.now()

	p.tasks[idx] = updated
	if err := p.Reschedule(); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CompleteTask marks a task done, removing it from future schedules.
func (p *Planner) CompleteTask(id string) (*task.Task, error) {
	completed := true
	return p.UpdateTask(id, UpdateTaskOptions{Completed: &completed})
}

// DeleteTask removes a task and its pending sessions. Completed
// sessions generated from the task stay in the history.
func (p *Planner) DeleteTask(id string) error {
	idx := p.taskIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", task.ErrTaskNotFound, id)
	}

	p.tasks = append(p.tasks[:idx], p.tasks[idx+1:]...)

	kept := p.sessions[:0]
	for _, s := range p.sessions {
		if s.TaskID == id && !s.Completed {
			continue
		}
		kept = append(kept, s)
	}
	p.sessions = kept

	return p.Reschedule()
}

// ResolveTaskID resolves a full task ID or a unique prefix.
func (p *Planner) ResolveTaskID(prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("%w: empty ID", task.ErrTaskNotFound)
	}

	var matches []string
	for _, t := range p.tasks {
		if t.ID == prefix {
			return t.ID, nil
		}
		if len(prefix) <= len(t.ID) && t.ID[:len(prefix)] == prefix {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", task.ErrTaskNotFound, prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s", task.ErrAmbiguousTaskIDPrefix, prefix)
	}
}

// RecordSession appends a session to the history without scheduling.
// It is used to seed completed sessions from prior studying.
func (p *Planner) RecordSession(s session.StudySession) error {
	if p.subjectIndex(s.Subject.ID) < 0 {
		return fmt.Errorf("%w: %s", subject.ErrSubjectNotFound, s.Subject.ID)
	}
	if s.Type == "" {
		s.Type = session.TypeStudy
	}
	if !s.Type.IsValid() {
		return fmt.Errorf("invalid session type %q", s.Type)
	}
	p.sessions = append(p.sessions, s)
	return nil
}

// CompleteSession marks a session finished and accrues its actual
// duration onto the owning subject's total hours.
func (p *Planner) CompleteSession(id string, actualMinutes int) error {
	idx := -1
	for i := range p.sessions {
		if p.sessions[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", session.ErrSessionNotFound, id)
	}

	if err := p.sessions[idx].Complete(actualMinutes); err != nil {
		return err
	}

	if subjectIdx := p.subjectIndex(p.sessions[idx].Subject.ID); subjectIdx >= 0 {
		p.subjects[subjectIdx].TotalHours += float64(actualMinutes) / 60
	}
	return nil
}

// Reschedule regenerates the pending schedule from the current backlog.
// Completed sessions are preserved untouched.
func (p *Planner) Reschedule() error {
	generated, err := schedule.Generate(p.tasks, p.subjects, p.hoursPerDay, p.now())
	if err != nil {
		return err
	}

	var completed []session.StudySession
	for _, s := range p.sessions {
		if s.Completed {
			completed = append(completed, s)
		}
	}

	p.sessions = append(completed, generated...)
	return nil
}

// TodaySessions returns the sessions scheduled on the current calendar
// day, ordered by start time.
func (p *Planner) TodaySessions() []session.StudySession {
	today := dayOf(p.now())

	var todays []session.StudySession
	for _, s := range p.sessions {
		if dayOf(s.ScheduledTime).Equal(today) {
			todays = append(todays, s)
		}
	}

	sort.Slice(todays, func(i, j int) bool {
		return todays[i].ScheduledTime.Before(todays[j].ScheduledTime)
	})
	return todays
}

// NextSession returns the first pending session scheduled today, if any.
func (p *Planner) NextSession() (session.StudySession, bool) {
	for _, s := range p.TodaySessions() {
		if !s.Completed {
			return s, true
		}
	}
	return session.StudySession{}, false
}

// Analytics computes the derived dashboard view from the current
// collections.
func (p *Planner) Analytics() analytics.Analytics {
	return analytics.Compute(p.sessions, p.subjects, p.goals, p.now())
}

// newTaskID derives an ID from the title and creation time, re-salting
// on collision. Callers may inject a fixed clock, so two tasks with the
// same title can otherwise hash to the same ID.
func (p *Planner) newTaskID(title string, now time.Time) string {
	id := ids.GenerateWithTimestamp(title, now, ids.DefaultLength)
	for salt := 1; p.taskIndex(id) >= 0; salt++ {
		id = ids.GenerateWithTimestamp(fmt.Sprintf("%s#%d", title, salt), now, ids.DefaultLength)
	}
	return id
}

// newSubjectID is newTaskID's counterpart for the subject catalog.
func (p *Planner) newSubjectID(name string, now time.Time) string {
	id := ids.GenerateWithTimestamp(name, now, ids.DefaultLength)
	for salt := 1; p.subjectIndex(id) >= 0; salt++ {
		id = ids.GenerateWithTimestamp(fmt.Sprintf("%s#%d", name, salt), now, ids.DefaultLength)
	}
	return id
}

func (p *Planner) subjectIndex(id string) int {
	for i := range p.subjects {
		if p.subjects[i].ID == id {
			return i
		}
	}
	return -1
}

func (p *Planner) taskIndex(id string) int {
	for i := range p.tasks {
		if p.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
