package cli

import (
	"fmt"

	"github.com/alexanderramin/malla/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show career progress overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			progress, err := app.Progress.Progress(ctx)
			if err != nil {
				return err
			}
			mencion, err := app.Menciones.Selected(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(progress, mencion))
			return nil
		},
	}
}
