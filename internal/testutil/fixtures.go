package testutil

import (
	"strconv"
	"sync/atomic"

	"github.com/alexanderramin/kbtrack/internal/domain"
)

var testIDCounter atomic.Int64

// SessionOption customises a fixture session.
type SessionOption func(*domain.Session)

func WithDate(date string) SessionOption {
	return func(s *domain.Session) {
		s.Date = date
	}
}

func WithWorkoutType(t domain.WorkoutType) SessionOption {
	return func(s *domain.Session) {
		s.WorkoutType = t
	}
}

// NewTestSession returns a workout A session on 2024-01-01 with two
// exercises unless options say otherwise.
func NewTestSession(opts ...SessionOption) domain.Session {
	s := domain.Session{
		Date:        "2024-01-01",
		WorkoutType: domain.WorkoutA,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.Exercises == nil {
		s.Exercises = []domain.ExerciseEntry{
			{Name: "Kettlebell Goblet Squats", Sets: []domain.Set{
				{Reps: domain.CountReps(12), Completed: true},
				{Reps: domain.LabelReps("10")},
			}},
			{Name: "Kettlebell Farmer's Carries", Sets: []domain.Set{
				{Reps: domain.LabelReps("30s")},
			}},
		}
	}
	return s
}

// NewTestStoredSession wraps NewTestSession with a unique numeric id.
func NewTestStoredSession(opts ...SessionOption) domain.StoredSession {
	id := 1704067200000 + testIDCounter.Add(1)
	return domain.StoredSession{
		ID:      strconv.FormatInt(id, 10),
		Session: NewTestSession(opts...),
	}
}
