package template

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/kbtrack/internal/domain"
)

// ValidateSchema checks a WorkoutSchema for structural errors.
// Returns a slice of errors (empty if valid).
func ValidateSchema(schema *WorkoutSchema) []error {
	var errs []error

	if _, err := domain.ParseWorkoutType(schema.Type); err != nil {
		errs = append(errs, fmt.Errorf("template type: %w", err))
	}
	if strings.TrimSpace(schema.Name) == "" {
		errs = append(errs, fmt.Errorf("template name is required"))
	}
	if len(schema.Exercises) == 0 {
		errs = append(errs, fmt.Errorf("at least one exercise is required"))
	}

	for i, ex := range schema.Exercises {
		if strings.TrimSpace(ex.Name) == "" {
			errs = append(errs, fmt.Errorf("exercise[%d]: name is required", i))
		}
		if n, ok := ex.TargetReps.Count(); ok && n < 1 {
			errs = append(errs, fmt.Errorf("exercise[%d]: target_reps must be at least 1, got %d", i, n))
		}
		if label, ok := ex.TargetReps.Label(); ok && strings.TrimSpace(label) == "" {
			errs = append(errs, fmt.Errorf("exercise[%d]: target_reps is required", i))
		}
	}

	return errs
}
