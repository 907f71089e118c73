package importer

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/kbtrack/internal/domain"
)

// ValidateHistory checks imported sessions before they replace the history.
// Returns a slice of all validation errors found.
func ValidateHistory(sessions []domain.StoredSession) []error {
	var errs []error

	seen := make(map[string]int, len(sessions))
	for i, s := range sessions {
		field := fmt.Sprintf("sessions[%d]", i)
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", field))
		} else if first, dup := seen[s.ID]; dup {
			errs = append(errs, fmt.Errorf("%s.id %q duplicates sessions[%d]", field, s.ID, first))
		} else {
			seen[s.ID] = i
		}
		errs = append(errs, validateSession(field, s.Session)...)
	}

	return errs
}

func validateSession(field string, s domain.Session) []error {
	var errs []error

	if s.Date == "" {
		errs = append(errs, fmt.Errorf("%s.date is required", field))
	}
	if !s.WorkoutType.Valid() {
		errs = append(errs, fmt.Errorf("%s.workoutType: %w %q (want A or B)", field, domain.ErrInvalidWorkoutType, s.WorkoutType))
	}
	for j, ex := range s.Exercises {
		if ex.Name == "" {
			errs = append(errs, fmt.Errorf("%s.exercises[%d].name is required", field, j))
		}
		if len(ex.Sets) == 0 {
			errs = append(errs, fmt.Errorf("%s.exercises[%d]: %w", field, j, domain.ErrEmptyExercise))
		}
	}

	return errs
}

// Join folds validation errors into one error, or nil when there are none.
func Join(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("import has %d problem(s): %w", len(errs), errors.Join(errs...))
}
