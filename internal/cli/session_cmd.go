package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/kbtrack/internal/cli/formatter"
	"github.com/alexanderramin/kbtrack/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Record the in-progress workout",
		Long: `Edit the workout being recorded. Exercises and sets are numbered
from 1, as shown by "kbtrack session show". Every change is saved as a draft
so separate invocations work on the same session until it is committed.`,
	}

	cmd.AddCommand(
		newSessionShowCmd(app),
		newSessionDateCmd(app),
		newSessionTypeCmd(app),
		newSessionAddSetCmd(app),
		newSessionRemoveSetCmd(app),
		newSessionRepsCmd(app),
		newSessionToggleCmd(app),
		newSessionCommitCmd(app),
	)

	return cmd
}

func newSessionShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the in-progress session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSession(app.Tracker.Editor().Session()))
			return nil
		},
	}
}

func newSessionDateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "date YYYY-MM-DD",
		Short: "Set the session date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Tracker.Editor().SetDate(args[0])
			return saveAndShow(cmd, app)
		},
	}
}

func newSessionTypeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "type A|B",
		Short: "Switch workout, discarding recorded sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := domain.ParseWorkoutType(args[0])
			if err != nil {
				return err
			}
			app.Tracker.Editor().SwitchWorkoutType(t)
			return saveAndShow(cmd, app)
		},
	}
}

func newSessionAddSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add-set EXERCISE",
		Short: "Append a set copying the last set's reps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor := app.Tracker.Editor()
			ex, err := exerciseArg(editor.Session(), args[0])
			if err != nil {
				return err
			}
			editor.AddSet(ex)
			return saveAndShow(cmd, app)
		},
	}
}

func newSessionRemoveSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-set EXERCISE SET",
		Short: "Remove a set (the last remaining set is kept)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor := app.Tracker.Editor()
			ex, set, err := setArgs(editor.Session(), args[0], args[1])
			if err != nil {
				return err
			}
			if !editor.RemoveSet(ex, set) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render("An exercise keeps at least one set; nothing removed."))
				return nil
			}
			return saveAndShow(cmd, app)
		},
	}
}

func newSessionRepsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reps EXERCISE SET VALUE",
		Short: "Set the reps text of a set (e.g. 12 or 30s)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor := app.Tracker.Editor()
			ex, set, err := setArgs(editor.Session(), args[0], args[1])
			if err != nil {
				return err
			}
			editor.UpdateReps(ex, set, args[2])
			return saveAndShow(cmd, app)
		},
	}
}

func newSessionToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle EXERCISE SET",
		Short: "Mark a set done or not done",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor := app.Tracker.Editor()
			ex, set, err := setArgs(editor.Session(), args[0], args[1])
			if err != nil {
				return err
			}
			editor.ToggleSetCompleted(ex, set)
			return saveAndShow(cmd, app)
		},
	}
}

func newSessionCommitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "commit",
		Short: "Save the session to history and start the other workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stored, err := app.Tracker.Commit(commandContext(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Saved %s on %s %s\n",
				formatter.StyleGreen.Render("✔"),
				formatter.WorkoutBadge(stored.WorkoutType),
				formatter.FormatDate(stored.Date),
				formatter.Dim("("+stored.ID+")"))
			fmt.Fprintf(cmd.OutOrStdout(), "Next up: %s\n", formatter.WorkoutBadge(app.Tracker.Editor().WorkoutType()))
			return nil
		},
	}
}

// saveAndShow stores the draft and prints the updated session.
func saveAndShow(cmd *cobra.Command, app *App) error {
	if err := app.Tracker.SaveDraft(commandContext(cmd)); err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSession(app.Tracker.Editor().Session()))
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
