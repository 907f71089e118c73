package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive workout screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}
}

func runTUI(app *App) error {
	_, err := newTUIProgram(app, tea.WithAltScreen()).Run()
	return err
}

func newTUIProgram(app *App, opts ...tea.ProgramOption) *tea.Program {
	if app.BeforeTUI != nil {
		app.BeforeTUI()
	}
	return tea.NewProgram(newAppModel(app), opts...)
}
