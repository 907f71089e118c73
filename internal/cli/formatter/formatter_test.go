package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/kbtrack/internal/domain"
	"github.com/alexanderramin/kbtrack/internal/template"
	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-01-01", "Mon, Jan 1, 2024"},
		{"2024-02-29", "Thu, Feb 29, 2024"},
		{"2023-12-31", "Sun, Dec 31, 2023"},
		{"", ""},
		{"yesterday", "yesterday"},
		{"2024-13-01", "2024-13-01"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.in))
		})
	}
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"today", "2026-02-07", "Today"},
		{"tomorrow", "2026-02-08", "Tomorrow"},
		{"yesterday", "2026-02-06", "Yesterday"},
		{"3 days future", "2026-02-10", "In 3d"},
		{"3 days past", "2026-02-04", "3d ago"},
		{"2 weeks past", "2026-01-24", "2w ago"},
		{"3 months past", "2025-11-09", "3mo ago"},
		{"garbage", "soon", "--"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.input, now))
		})
	}
}

func TestFormatHistory_Empty(t *testing.T) {
	out := stripANSI(FormatHistory(nil, time.Now()))
	assert.Equal(t, "No workouts logged yet.\n", out)
}

func TestFormatSummary_Empty(t *testing.T) {
	out := stripANSI(FormatSummary(domain.Summary{}, false))
	assert.Equal(t, "No workouts logged yet.\n", out)
}

func TestFormatStoredSession_IncludesID(t *testing.T) {
	out := stripANSI(FormatStoredSession(domain.StoredSession{ID: "42", Session: sampleSessionB()}))
	assert.True(t, strings.HasPrefix(out, "id 42\n"))
	assert.Contains(t, out, "Kettlebell Swings")
}

func TestFormatTemplateList(t *testing.T) {
	out := stripANSI(FormatTemplateList(template.Default().All()))

	assert.Contains(t, out, "TEMPLATES")
	assert.Contains(t, out, "Workout A: Full Body Strength Focus")
	assert.Contains(t, out, "Workout B: Power and Conditioning")
	assert.Contains(t, out, "Kettlebell Farmer's Carries")
	assert.Contains(t, out, "30s")
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "B"},
		[][]string{{Bold("long cell"), "x"}, {"y"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{
		"A          B",
		"─────────  ─",
		"long cell  x",
		"y          ",
	}, lines)
}

func TestWorkoutBadge(t *testing.T) {
	assert.Equal(t, "Workout A", stripANSI(WorkoutBadge(domain.WorkoutA)))
	assert.Equal(t, "Workout B", stripANSI(WorkoutBadge(domain.WorkoutB)))
}
