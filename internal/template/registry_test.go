package template

import (
	"testing"
	"testing/fstest"

	"github.com/alexanderramin/kbtrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_EmbeddedTemplates(t *testing.T) {
	r := Default()

	a := r.Get(domain.WorkoutA)
	assert.Equal(t, "Workout A: Full Body Strength Focus", a.Name)
	require.Len(t, a.Exercises, 5)
	assert.Equal(t, domain.TemplateExercise{Name: "Kettlebell Goblet Squats", TargetReps: domain.CountReps(12)}, a.Exercises[0])
	assert.Equal(t, domain.LabelReps("30s"), a.Exercises[4].TargetReps)

	b := r.Get(domain.WorkoutB)
	assert.Equal(t, "Workout B: Power and Conditioning", b.Name)
	require.Len(t, b.Exercises, 5)
	assert.Equal(t, "Turkish Get-up", b.Exercises[3].Name)
	assert.Equal(t, domain.CountReps(3), b.Exercises[3].TargetReps)
}

func TestGet_ReturnsCopy(t *testing.T) {
	r := Default()
	a := r.Get(domain.WorkoutA)
	a.Exercises[0].Name = "mutated"

	assert.Equal(t, "Kettlebell Goblet Squats", r.Get(domain.WorkoutA).Exercises[0].Name)
}

func TestSeed_OneIncompleteSetAtTarget(t *testing.T) {
	entries := Default().Get(domain.WorkoutB).Seed()
	require.Len(t, entries, 5)
	for _, e := range entries {
		require.Len(t, e.Sets, 1)
		assert.False(t, e.Sets[0].Completed)
	}
	assert.Equal(t, domain.CountReps(15), entries[0].Sets[0].Reps)
	assert.Equal(t, domain.LabelReps("30s"), entries[4].Sets[0].Reps)
}

func TestAll_Order(t *testing.T) {
	all := Default().All()
	require.Len(t, all, 2)
	assert.Equal(t, domain.WorkoutA, all[0].Type)
	assert.Equal(t, domain.WorkoutB, all[1].Type)
}

func TestLoad_MissingWorkout(t *testing.T) {
	fsys := fstest.MapFS{
		"a.json": {Data: []byte(`{"type":"A","name":"Only A","exercises":[{"name":"Swing","target_reps":10}]}`)},
	}
	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing template for workout B")
}

func TestLoad_DuplicateWorkout(t *testing.T) {
	body := []byte(`{"type":"A","name":"A","exercises":[{"name":"Swing","target_reps":10}]}`)
	fsys := fstest.MapFS{
		"a1.json": {Data: body},
		"a2.json": {Data: body},
	}
	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate template")
}

func TestLoad_InvalidJSON(t *testing.T) {
	fsys := fstest.MapFS{"a.json": {Data: []byte(`{"type":"A"`)}}
	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing template")
}
