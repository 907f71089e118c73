package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/kbtrack/internal/cli/formatter"
	"github.com/alexanderramin/kbtrack/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// setRow addresses one set of the in-progress session.
type setRow struct {
	ex, set int
}

// currentView edits the in-progress session. The cursor moves over sets.
type currentView struct {
	state   *SharedState
	cursor  int
	editing bool
	input   textinput.Model
}

func newCurrentView(state *SharedState) *currentView {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "reps"
	ti.Width = 8
	return &currentView{state: state, input: ti}
}

func (v *currentView) ID() ViewID          { return ViewCurrent }
func (v *currentView) Title() string       { return "Current" }
func (v *currentView) CapturesInput() bool { return v.editing }

func (v *currentView) ShortHelp() []key.Binding {
	if v.editing {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save reps")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add set")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove set")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "reps")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "switch workout")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "date")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save workout")),
	}
}

func (v *currentView) Init() tea.Cmd { return nil }

func (v *currentView) session() domain.Session {
	return v.state.App.Tracker.Editor().Session()
}

func (v *currentView) rows() []setRow {
	var rows []setRow
	for i, ex := range v.session().Exercises {
		for j := range ex.Sets {
			rows = append(rows, setRow{ex: i, set: j})
		}
	}
	return rows
}

func (v *currentView) clampCursor() {
	n := len(v.rows())
	if v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// moveTo puts the cursor on the given set if it exists.
func (v *currentView) moveTo(target setRow) {
	for i, r := range v.rows() {
		if r == target {
			v.cursor = i
			return
		}
	}
}

func (v *currentView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.clampCursor()
		return v, nil

	case tea.KeyMsg:
		if v.editing {
			return v.updateEditing(msg)
		}

		rows := v.rows()
		if len(rows) == 0 {
			return v, nil
		}
		row := rows[v.cursor]
		editor := v.state.App.Tracker.Editor()

		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(rows)-1 {
				v.cursor++
			}
		case " ", "space":
			editor.ToggleSetCompleted(row.ex, row.set)
			return v, v.state.saveDraft()
		case "a":
			editor.AddSet(row.ex)
			v.moveTo(setRow{ex: row.ex, set: len(editor.Session().Exercises[row.ex].Sets) - 1})
			return v, v.state.saveDraft()
		case "x":
			if !editor.RemoveSet(row.ex, row.set) {
				return v, showOutput(formatter.StyleYellow.Render("An exercise keeps at least one set."))
			}
			v.clampCursor()
			return v, v.state.saveDraft()
		case "e":
			v.editing = true
			v.input.SetValue(editor.Session().Exercises[row.ex].Sets[row.set].Reps.String())
			v.input.CursorEnd()
			return v, v.input.Focus()
		case "t":
			next := editor.WorkoutType().Opposite()
			editor.SwitchWorkoutType(next)
			v.cursor = 0
			return v, tea.Batch(v.state.saveDraft(), showOutput("Switched to "+formatter.WorkoutBadge(next)))
		case "d":
			return v, pushView(newDateFormView(v.state))
		case "s":
			return v, v.commit()
		}
	}
	return v, nil
}

func (v *currentView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		row := v.rows()[v.cursor]
		v.state.App.Tracker.Editor().UpdateReps(row.ex, row.set, v.input.Value())
		v.editing = false
		v.input.Blur()
		return v, v.state.saveDraft()
	case tea.KeyEsc:
		v.editing = false
		v.input.Blur()
		return v, nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *currentView) commit() tea.Cmd {
	tracker := v.state.App.Tracker
	stored, err := tracker.Commit(context.Background())
	v.cursor = 0
	if err != nil {
		return tea.Batch(refreshViews(), showOutput(shellError(err)))
	}
	return tea.Batch(refreshViews(), showOutput(fmt.Sprintf("%s Saved %s. Next up: %s",
		formatter.StyleGreen.Render("✔"),
		formatter.WorkoutBadge(stored.WorkoutType),
		formatter.WorkoutBadge(tracker.Editor().WorkoutType()))))
}

func (v *currentView) View() string {
	s := v.session()
	var b strings.Builder

	fmt.Fprintf(&b, "\n  %s  %s  %s\n\n",
		formatter.WorkoutBadge(s.WorkoutType),
		formatter.Bold(formatter.FormatDate(s.Date)),
		formatter.Dim(fmt.Sprintf("%d/%s done", s.CompletedSets(), formatter.Plural(s.TotalSets(), "set"))))

	i := 0
	for exIdx, ex := range s.Exercises {
		fmt.Fprintf(&b, "  %s\n", formatter.Bold(ex.Name))
		for setIdx, set := range ex.Sets {
			marker := "   "
			if i == v.cursor {
				marker = formatter.StyleHeader.Render(" › ")
			}
			reps := set.Reps.String()
			if reps == "" {
				reps = formatter.Dim("-")
			}
			if v.editing && i == v.cursor {
				reps = v.input.View()
			}
			fmt.Fprintf(&b, "  %s%s  %s  %s\n", marker,
				formatter.Dim(fmt.Sprintf("set %d", setIdx+1)),
				formatter.SetMark(set.Completed), reps)
			i++
		}
		if exIdx < len(s.Exercises)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
