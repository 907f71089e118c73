package cli

import (
	"fmt"

	"github.com/alexanderramin/kbtrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTemplatesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the workout templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTemplateList(app.templates().All()))
			return nil
		},
	}
}
