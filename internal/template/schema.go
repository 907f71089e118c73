package template

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/kbtrack/internal/domain"
)

// WorkoutSchema is the JSON shape of one workout template file.
type WorkoutSchema struct {
	Type      string           `json:"type"`
	Name      string           `json:"name"`
	Exercises []ExerciseConfig `json:"exercises"`
}

type ExerciseConfig struct {
	Name       string      `json:"name"`
	TargetReps domain.Reps `json:"target_reps"`
}

// ParseSchema decodes a template file.
func ParseSchema(data []byte) (*WorkoutSchema, error) {
	var schema WorkoutSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return &schema, nil
}

// toDomain converts a validated schema.
func (s *WorkoutSchema) toDomain() domain.WorkoutTemplate {
	t, _ := domain.ParseWorkoutType(s.Type)
	out := domain.WorkoutTemplate{Type: t, Name: s.Name}
	for _, ex := range s.Exercises {
		out.Exercises = append(out.Exercises, domain.TemplateExercise{
			Name:       ex.Name,
			TargetReps: ex.TargetReps,
		})
	}
	return out
}
