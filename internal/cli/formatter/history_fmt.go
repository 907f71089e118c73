package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/kbtrack/internal/domain"
)

// FormatHistory renders committed sessions as a table in the order given.
func FormatHistory(sessions []domain.StoredSession, now time.Time) string {
	if len(sessions) == 0 {
		return Dim("No workouts logged yet.") + "\n"
	}

	headers := []string{"ID", "DATE", "WORKOUT", "SETS", "WHEN"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			Dim(s.ID),
			FormatDate(s.Date),
			WorkoutBadge(s.WorkoutType),
			fmt.Sprintf("%d/%d", s.CompletedSets(), s.TotalSets()),
			Dim(RelativeDateFrom(s.Date, now)),
		})
	}
	return RenderTable(headers, rows)
}
