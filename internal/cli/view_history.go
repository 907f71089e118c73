package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/kbtrack/internal/cli/formatter"
	"github.com/alexanderramin/kbtrack/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// historyView lists committed workouts, newest first.
type historyView struct {
	state    *SharedState
	cursor   int
	offset   int
	expanded map[string]bool
}

func newHistoryView(state *SharedState) *historyView {
	return &historyView{state: state, expanded: make(map[string]bool)}
}

func (v *historyView) ID() ViewID    { return ViewHistory }
func (v *historyView) Title() string { return "History" }

func (v *historyView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
	}
}

func (v *historyView) Init() tea.Cmd { return nil }

func (v *historyView) sessions() []domain.StoredSession {
	return v.state.App.Tracker.Sessions()
}

func (v *historyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		if n := len(v.sessions()); v.cursor >= n {
			v.cursor = max(n-1, 0)
		}
		return v, nil

	case tea.KeyMsg:
		sessions := v.sessions()
		if len(sessions) == 0 {
			return v, nil
		}
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(sessions)-1 {
				v.cursor++
			}
		case "enter":
			id := sessions[v.cursor].ID
			v.expanded[id] = !v.expanded[id]
		case "x":
			return v, v.delete(sessions[v.cursor])
		}
	}
	return v, nil
}

func (v *historyView) delete(s domain.StoredSession) tea.Cmd {
	if _, err := v.state.App.Tracker.DeleteSession(context.Background(), s.ID); err != nil {
		return tea.Batch(refreshViews(), showOutput(shellError(err)))
	}
	delete(v.expanded, s.ID)
	return tea.Batch(refreshViews(), showOutput(fmt.Sprintf("%s Deleted %s on %s",
		formatter.StyleGreen.Render("✔"),
		formatter.WorkoutBadge(s.WorkoutType),
		formatter.FormatDate(s.Date))))
}

func (v *historyView) View() string {
	sessions := v.sessions()
	if len(sessions) == 0 {
		return "\n  " + formatter.Dim("No workouts logged yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	from, to := v.window(len(sessions))
	if from > 0 {
		b.WriteString("  " + formatter.Dim(fmt.Sprintf("↑ %d newer", from)) + "\n")
	}
	for i := from; i < to; i++ {
		s := sessions[i]
		marker := "  "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("› ")
		}
		fmt.Fprintf(&b, "  %s%-18s %s  %s\n", marker,
			formatter.FormatDate(s.Date),
			formatter.WorkoutBadge(s.WorkoutType),
			formatter.Dim(fmt.Sprintf("%d/%d sets", s.CompletedSets(), s.TotalSets())))
		if v.expanded[s.ID] {
			for _, line := range strings.Split(strings.TrimRight(formatter.FormatSession(s.Session), "\n"), "\n") {
				b.WriteString("      " + line + "\n")
			}
		}
	}
	if to < len(sessions) {
		b.WriteString("  " + formatter.Dim(fmt.Sprintf("↓ %d older", len(sessions)-to)) + "\n")
	}
	return b.String()
}

// window returns the range of rows to draw so the cursor stays on screen.
// Before the first WindowSizeMsg every row is drawn.
func (v *historyView) window(n int) (from, to int) {
	if v.state.Height == 0 {
		return 0, n
	}
	rows := max(v.state.ContentHeight()-3, 1)
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+rows {
		v.offset = v.cursor - rows + 1
	}
	v.offset = min(v.offset, max(n-rows, 0))
	return v.offset, min(v.offset+rows, n)
}
