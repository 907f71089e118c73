package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/kbtrack/internal/domain"
)

// FormatTemplate renders one workout template with its target reps.
func FormatTemplate(t domain.WorkoutTemplate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", WorkoutBadge(t.Type), Bold(t.Name))

	rows := make([][]string, 0, len(t.Exercises))
	for i, ex := range t.Exercises {
		rows = append(rows, []string{Dim(fmt.Sprint(i + 1)), ex.Name, ex.TargetReps.String()})
	}
	b.WriteString(RenderTable([]string{"#", "EXERCISE", "TARGET"}, rows))
	return b.String()
}

// FormatTemplateList renders every template inside a bordered box.
func FormatTemplateList(templates []domain.WorkoutTemplate) string {
	parts := make([]string, 0, len(templates))
	for _, t := range templates {
		parts = append(parts, FormatTemplate(t))
	}
	return RenderBox("Templates", strings.TrimRight(strings.Join(parts, "\n"), "\n"))
}
