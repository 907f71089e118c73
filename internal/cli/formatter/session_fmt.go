package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/kbtrack/internal/domain"
)

// FormatSession renders a session with 1-based exercise and set numbers, the
// same numbers the session subcommands accept.
func FormatSession(s domain.Session) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", WorkoutBadge(s.WorkoutType), Bold(FormatDate(s.Date)))
	fmt.Fprintf(&b, "%s\n\n", Dim(fmt.Sprintf("%d/%s completed", s.CompletedSets(), Plural(s.TotalSets(), "set"))))

	for i, ex := range s.Exercises {
		fmt.Fprintf(&b, "%2d  %s\n", i+1, Bold(ex.Name))
		for j, set := range ex.Sets {
			fmt.Fprintf(&b, "      %s  %-6s  %s\n", Dim(fmt.Sprintf("set %d", j+1)), repsText(set.Reps), SetMark(set.Completed))
		}
	}
	return b.String()
}

// FormatStoredSession renders a committed session with its id.
func FormatStoredSession(s domain.StoredSession) string {
	return fmt.Sprintf("%s %s\n%s", Dim("id"), s.ID, FormatSession(s.Session))
}

func repsText(r domain.Reps) string {
	if s := r.String(); s != "" {
		return s
	}
	return "-"
}
