package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/kbtrack/internal/domain"
)

// FormatSummary renders the aggregate counts. ok=false means the history is
// empty and there is nothing to summarize.
func FormatSummary(sum domain.Summary, ok bool) string {
	if !ok {
		return Dim("No workouts logged yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header("Summary"))
	b.WriteString("\n")
	line := func(label, value string) {
		fmt.Fprintf(&b, "  %s  %s\n", Dim(fmt.Sprintf("%-14s", label)), value)
	}
	line("Total workouts", Bold(fmt.Sprint(sum.TotalCount)))
	line("Workout A", WorkoutColor(domain.WorkoutA).Render(fmt.Sprint(sum.CountA)))
	line("Workout B", WorkoutColor(domain.WorkoutB).Render(fmt.Sprint(sum.CountB)))
	line("Most recent", FormatDate(sum.MostRecentDate))
	return b.String()
}
