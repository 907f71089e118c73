package service

import (
	"github.com/alexanderramin/kbtrack/internal/domain"
	"github.com/alexanderramin/kbtrack/internal/template"
)

// Editor owns the single in-progress session. Index arguments must address
// existing exercises and sets; callers validate user input with
// domain.Session.ValidateSetIndex first. An out-of-range index panics.
type Editor struct {
	templates template.Source
	session   domain.Session
}

// NewEditor seeds a fresh session of workout t on date.
func NewEditor(templates template.Source, date string, t domain.WorkoutType) *Editor {
	e := &Editor{templates: templates}
	e.session.Date = date
	e.SwitchWorkoutType(t)
	return e
}

// RestoreEditor resumes editing a previously saved draft.
func RestoreEditor(templates template.Source, draft domain.Session) *Editor {
	return &Editor{templates: templates, session: draft.Clone()}
}

// Session returns a snapshot of the live session.
func (e *Editor) Session() domain.Session {
	return e.session.Clone()
}

func (e *Editor) WorkoutType() domain.WorkoutType {
	return e.session.WorkoutType
}

// SetDate stores date verbatim.
func (e *Editor) SetDate(date string) {
	e.session.Date = date
}

// SwitchWorkoutType discards every recorded set and reseeds from the
// template of t. The date is kept.
func (e *Editor) SwitchWorkoutType(t domain.WorkoutType) {
	e.session.WorkoutType = t
	e.session.Exercises = e.templates.Get(t).Seed()
}

func (e *Editor) AddSet(ex int) {
	e.session.AddSet(ex)
}

// RemoveSet is a no-op on an exercise's last remaining set.
func (e *Editor) RemoveSet(ex, set int) bool {
	return e.session.RemoveSet(ex, set)
}

func (e *Editor) UpdateReps(ex, set int, raw string) {
	e.session.UpdateReps(ex, set, raw)
}

func (e *Editor) ToggleSetCompleted(ex, set int) {
	e.session.ToggleSetCompleted(ex, set)
}
