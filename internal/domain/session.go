package domain

import (
	"errors"
	"fmt"
)

var (
	ErrExerciseIndex = errors.New("exercise index out of range")
	ErrSetIndex      = errors.New("set index out of range")
	ErrEmptyExercise = errors.New("exercise has no sets")
)

// Set is one performed unit of an exercise.
type Set struct {
	Reps      Reps `json:"reps"`
	Completed bool `json:"completed"`
}

// ExerciseEntry holds the sets recorded for one exercise. Sets is never empty.
type ExerciseEntry struct {
	Name string `json:"name"`
	Sets []Set  `json:"sets"`
}

// Session is one workout attempt for a date and workout type.
type Session struct {
	Date        string          `json:"date"`
	WorkoutType WorkoutType     `json:"workoutType"`
	Exercises   []ExerciseEntry `json:"exercises"`
}

// StoredSession is a committed session. ID is issued once at commit time.
type StoredSession struct {
	ID string `json:"id"`
	Session
}

// Clone returns a deep copy of s.
func (s Session) Clone() Session {
	out := Session{Date: s.Date, WorkoutType: s.WorkoutType}
	if s.Exercises != nil {
		out.Exercises = make([]ExerciseEntry, len(s.Exercises))
		for i, ex := range s.Exercises {
			out.Exercises[i] = ExerciseEntry{
				Name: ex.Name,
				Sets: append([]Set(nil), ex.Sets...),
			}
		}
	}
	return out
}

// Clone returns a deep copy of s.
func (s StoredSession) Clone() StoredSession {
	return StoredSession{ID: s.ID, Session: s.Session.Clone()}
}

// ValidateIndex reports whether ex addresses an exercise.
func (s *Session) ValidateIndex(ex int) error {
	if ex < 0 || ex >= len(s.Exercises) {
		return fmt.Errorf("%w: %d (have %d)", ErrExerciseIndex, ex, len(s.Exercises))
	}
	return nil
}

// ValidateSetIndex reports whether (ex, set) addresses an existing set.
func (s *Session) ValidateSetIndex(ex, set int) error {
	if err := s.ValidateIndex(ex); err != nil {
		return err
	}
	if n := len(s.Exercises[ex].Sets); set < 0 || set >= n {
		return fmt.Errorf("%w: %d (exercise %d has %d)", ErrSetIndex, set, ex, n)
	}
	return nil
}

// Validate checks the shape invariants a restored session must satisfy before
// it can be edited.
func (s *Session) Validate() error {
	if !s.WorkoutType.Valid() {
		return fmt.Errorf("%w %q", ErrInvalidWorkoutType, s.WorkoutType)
	}
	for i, ex := range s.Exercises {
		if len(ex.Sets) == 0 {
			return fmt.Errorf("exercise %d (%s): %w", i, ex.Name, ErrEmptyExercise)
		}
	}
	return nil
}

// AddSet appends an incomplete set that repeats the reps of the exercise's
// current last set.
func (s *Session) AddSet(ex int) {
	entry := &s.Exercises[ex]
	last := entry.Sets[len(entry.Sets)-1]
	entry.Sets = append(entry.Sets, Set{Reps: last.Reps})
}

// RemoveSet deletes a set unless it is the exercise's only one. It reports
// whether anything was removed.
func (s *Session) RemoveSet(ex, set int) bool {
	entry := &s.Exercises[ex]
	if len(entry.Sets) <= 1 {
		return false
	}
	entry.Sets = append(entry.Sets[:set], entry.Sets[set+1:]...)
	return true
}

// UpdateReps overwrites the reps of a set with the raw text, unvalidated.
func (s *Session) UpdateReps(ex, set int, raw string) {
	s.Exercises[ex].Sets[set].Reps = LabelReps(raw)
}

func (s *Session) ToggleSetCompleted(ex, set int) {
	sp := &s.Exercises[ex].Sets[set]
	sp.Completed = !sp.Completed
}

func (s *Session) TotalSets() int {
	n := 0
	for _, ex := range s.Exercises {
		n += len(ex.Sets)
	}
	return n
}

func (s *Session) CompletedSets() int {
	n := 0
	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			if set.Completed {
				n++
			}
		}
	}
	return n
}
