package cli

import (
	"github.com/alexanderramin/kbtrack/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// statsView shows the summary over the whole history.
type statsView struct {
	state *SharedState
}

func newStatsView(state *SharedState) *statsView {
	return &statsView{state: state}
}

func (v *statsView) ID() ViewID                          { return ViewStats }
func (v *statsView) Title() string                       { return "Stats" }
func (v *statsView) ShortHelp() []key.Binding            { return nil }
func (v *statsView) Init() tea.Cmd                       { return nil }
func (v *statsView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

func (v *statsView) View() string {
	tracker := v.state.App.Tracker
	out := "\n" + formatter.FormatSummary(tracker.Summary())
	return out + "\n  " + formatter.Dim("Next up: ") + formatter.WorkoutBadge(tracker.Editor().WorkoutType()) + "\n"
}
