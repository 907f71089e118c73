package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a view over the active tab, e.g. a form.
type pushViewMsg struct {
	view View
}

// refreshViewMsg asks every tab to re-read the tracker after a mutation.
type refreshViewMsg struct{}

// cmdOutputMsg carries a transient line shown above the status bar.
type cmdOutputMsg struct {
	output string
}

// formDoneMsg is sent when a form is submitted or cancelled.
// The appModel handles it atomically: pop the form, then run nextCmd.
type formDoneMsg struct {
	nextCmd tea.Cmd
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

func showOutput(s string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

// formDoneOutput pops the form and shows s.
func formDoneOutput(s string) tea.Msg {
	return formDoneMsg{nextCmd: showOutput(s)}
}
