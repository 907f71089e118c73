package repository

import (
	"testing"

	"github.com/alexanderramin/kbtrack/internal/domain"
	"github.com/alexanderramin/kbtrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSessions_NilIsEmptyArray(t *testing.T) {
	data, err := EncodeSessions(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDecodeSessions_BlankAndNull(t *testing.T) {
	for _, raw := range []string{"", "   ", "null"} {
		got, err := DecodeSessions([]byte(raw))
		require.NoError(t, err, "raw=%q", raw)
		assert.Empty(t, got)
	}
}

func TestDecodeSessions_Malformed(t *testing.T) {
	for _, raw := range []string{
		`{`,
		`{"id":"1"}`,
		`"kettlebell"`,
		`[{"id":"1","date":"2024-01-01","workoutType":"A","exercises":[{"name":"x","sets":[{"reps":true}]}]}]`,
		`[{"id":1}]`,
	} {
		_, err := DecodeSessions([]byte(raw))
		assert.ErrorIs(t, err, ErrMalformed, "raw=%s", raw)
	}
}

func TestSessionsRoundTrip(t *testing.T) {
	in := []domain.StoredSession{
		testutil.NewTestStoredSession(testutil.WithWorkoutType(domain.WorkoutB), testutil.WithDate("2024-01-03")),
		testutil.NewTestStoredSession(testutil.WithDate("2024-01-02")),
		testutil.NewTestStoredSession(),
	}

	data, err := EncodeSessions(in)
	require.NoError(t, err)
	out, err := DecodeSessions(data)
	require.NoError(t, err)

	assert.Equal(t, in, out)
}

func TestDecodeDraft_RejectsUneditable(t *testing.T) {
	_, err := decodeDraft([]byte(`{"date":"2024-01-01","workoutType":"A","exercises":[{"name":"x","sets":[]}]}`))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = decodeDraft([]byte(`{"date":"2024-01-01","workoutType":"Z","exercises":[]}`))
	assert.ErrorIs(t, err, ErrMalformed)
}
