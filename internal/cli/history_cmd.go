package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/kbtrack/internal/cli/formatter"
	"github.com/alexanderramin/kbtrack/internal/domain"
	"github.com/alexanderramin/kbtrack/internal/importer"
	"github.com/alexanderramin/kbtrack/internal/repository"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"hist"},
		Short:   "Browse and manage committed workouts",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
		newHistoryRemoveCmd(app),
		newHistoryExportCmd(app),
		newHistoryImportCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var filter workoutTypeValue

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List committed workouts, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var sessions []domain.StoredSession
			for _, s := range app.Tracker.Sessions() {
				if filter.matches(s.WorkoutType) {
					sessions = append(sessions, s)
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(sessions, app.now()))
			return nil
		},
	}

	cmd.Flags().Var(&filter, "type", "Only show one workout type (A or B)")
	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one committed workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Tracker.Session(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStoredSession(s))
			return nil
		},
	}
}

func newHistoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a committed workout",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := app.Tracker.DeleteSession(commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintf(cmd.OutOrStdout(), "No workout with id %s.\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted workout %s\n", formatter.StyleGreen.Render("✔"), args[0])
			return nil
		},
	}
}

func newHistoryExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the history as a JSON array",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := repository.EncodeSessions(app.Tracker.Sessions())
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", formatter.Plural(len(app.Tracker.Sessions()), "workout"), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}

func newHistoryImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the history with an exported JSON array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := importer.LoadHistory(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			if err := importer.Join(importer.ValidateHistory(sessions)); err != nil {
				return err
			}
			if err := app.Tracker.ReplaceAll(commandContext(cmd), sessions); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Imported %s\n", formatter.StyleGreen.Render("✔"), formatter.Plural(len(sessions), "workout"))
			return nil
		},
	}
}
