package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReps_ZeroValueIsEmptyLabel(t *testing.T) {
	var r Reps
	assert.Equal(t, RepsLabel, r.Kind())
	label, ok := r.Label()
	assert.True(t, ok)
	assert.Equal(t, "", label)
}

func TestReps_String(t *testing.T) {
	assert.Equal(t, "12", CountReps(12).String())
	assert.Equal(t, "30s", LabelReps("30s").String())
}

func TestReps_JSONShapes(t *testing.T) {
	data, err := json.Marshal([]Reps{CountReps(15), LabelReps("30s"), LabelReps("12")})
	require.NoError(t, err)
	assert.JSONEq(t, `[15, "30s", "12"]`, string(data))
}

func TestReps_UnmarshalAcceptsNumberOrString(t *testing.T) {
	var got []Reps
	require.NoError(t, json.Unmarshal([]byte(`[12, "30s", 8.0, "12"]`), &got))
	assert.Equal(t, []Reps{CountReps(12), LabelReps("30s"), CountReps(8), LabelReps("12")}, got)
}

func TestReps_UnmarshalRejectsOtherKinds(t *testing.T) {
	for _, raw := range []string{`true`, `null`, `{}`, `[1]`, `1.5`} {
		var r Reps
		assert.Error(t, json.Unmarshal([]byte(raw), &r), "raw=%s", raw)
	}
}
