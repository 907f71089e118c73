package cli

import (
	"github.com/alexanderramin/kbtrack/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

var formKeys = []key.Binding{
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// formView shows a huh.Form as an overlay above the tabs. onSubmit runs
// inside Update once the form completes; esc or an aborted form closes it
// without changes.
type formView struct {
	state    *SharedState
	form     *huh.Form
	title    string
	onSubmit func() tea.Cmd
}

func newFormView(state *SharedState, title string, form *huh.Form, onSubmit func() tea.Cmd) *formView {
	return &formView{state: state, form: form, title: title, onSubmit: onSubmit}
}

func (v *formView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		return v, cancelForm
	}

	model, cmd := v.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateAborted:
		return v, cancelForm
	case huh.StateCompleted:
		var next tea.Cmd
		if v.onSubmit != nil {
			next = v.onSubmit()
		}
		return v, func() tea.Msg {
			return formDoneMsg{nextCmd: tea.Batch(cmd, next)}
		}
	}
	return v, cmd
}

func cancelForm() tea.Msg {
	return formDoneOutput(formatter.Dim("Cancelled."))
}

func (v *formView) View() string {
	return "\n" + v.form.View()
}

func (v *formView) ID() ViewID               { return ViewForm }
func (v *formView) Title() string            { return v.title }
func (v *formView) ShortHelp() []key.Binding { return formKeys }
