package domain

// TemplateExercise is one exercise of a workout with its default target.
type TemplateExercise struct {
	Name       string
	TargetReps Reps
}

// WorkoutTemplate is the fixed ordered exercise list for workout A or B.
type WorkoutTemplate struct {
	Type      WorkoutType
	Name      string
	Exercises []TemplateExercise
}

// Clone returns a copy that shares no slices with t.
func (t WorkoutTemplate) Clone() WorkoutTemplate {
	out := t
	out.Exercises = append([]TemplateExercise(nil), t.Exercises...)
	return out
}

// Seed builds the exercise list of a fresh session: one incomplete set per
// exercise at the template target.
func (t WorkoutTemplate) Seed() []ExerciseEntry {
	entries := make([]ExerciseEntry, 0, len(t.Exercises))
	for _, ex := range t.Exercises {
		entries = append(entries, ExerciseEntry{
			Name: ex.Name,
			Sets: []Set{{Reps: ex.TargetReps}},
		})
	}
	return entries
}
