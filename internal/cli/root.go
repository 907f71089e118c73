package cli

import (
	"time"

	"github.com/alexanderramin/kbtrack/internal/service"
	"github.com/alexanderramin/kbtrack/internal/template"
	"github.com/spf13/cobra"
)

// App holds what the commands and the TUI operate on.
type App struct {
	Tracker   *service.Tracker
	Templates *template.Registry

	// Now is the clock used for relative dates. Defaults to time.Now.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. When nil the root
	// command never starts the TUI on its own.
	IsInteractive func() bool

	// BeforeTUI runs just before the full-screen UI takes over the terminal.
	BeforeTUI func()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) templates() *template.Registry {
	if a.Templates != nil {
		return a.Templates
	}
	return template.Default()
}

// NewRootCmd creates the top-level "kbtrack" command and registers all
// subcommands against the provided App. Without arguments it opens the TUI
// on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "kbtrack",
		Short:         "Kettlebell workout logger",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newSessionCmd(app),
		newHistoryCmd(app),
		newStatsCmd(app),
		newTemplatesCmd(app),
		newTUICmd(app),
	)

	return root
}
