package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_Empty(t *testing.T) {
	_, ok := Summarize(nil)
	assert.False(t, ok)
}

func TestSummarize_CountsAndMostRecent(t *testing.T) {
	sessions := []StoredSession{
		{ID: "3", Session: Session{Date: "2024-01-05", WorkoutType: WorkoutA}},
		{ID: "2", Session: Session{Date: "2024-01-03", WorkoutType: WorkoutB}},
		{ID: "1", Session: Session{Date: "2024-01-01", WorkoutType: WorkoutA}},
	}

	sum, ok := Summarize(sessions)

	assert.True(t, ok)
	assert.Equal(t, Summary{TotalCount: 3, CountA: 2, CountB: 1, MostRecentDate: "2024-01-05"}, sum)
	assert.Equal(t, 2, sum.CountByType(WorkoutA))
	assert.Equal(t, 1, sum.CountByType(WorkoutB))
}

func TestSummarize_MostRecentIsFirstEntryNotLatestDate(t *testing.T) {
	// The store is newest-first by commit; dates are user-entered text.
	sessions := []StoredSession{
		{ID: "2", Session: Session{Date: "2023-12-31", WorkoutType: WorkoutB}},
		{ID: "1", Session: Session{Date: "2024-06-01", WorkoutType: WorkoutA}},
	}
	sum, _ := Summarize(sessions)
	assert.Equal(t, "2023-12-31", sum.MostRecentDate)
}
