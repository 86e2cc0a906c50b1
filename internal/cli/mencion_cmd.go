package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/malla/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newMencionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mencion",
		Aliases: []string{"mención"},
		Short:   "Choose the specialization track that names the mención courses",
	}

	cmd.AddCommand(
		newMencionListCmd(app),
		newMencionSelectCmd(app),
		newMencionClearCmd(app),
	)

	return cmd
}

func newMencionListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available tracks",
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := app.Menciones.Selected(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMencionList(app.Menciones.List(), selected))
			return nil
		},
	}
}

func newMencionSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select [mencion-id]",
		Short: "Select a track; without an id, pick one interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) == 1 {
				id = args[0]
			} else {
				if !app.interactive() {
					return errors.New("mencion id required (see `malla mencion list`)")
				}
				if err := mencionPickerForm(app.Menciones.List(), &id).Run(); err != nil {
					return err
				}
			}
			if err := app.Menciones.Select(cmd.Context(), id); err != nil {
				return err
			}
			selected, err := app.Menciones.Selected(cmd.Context())
			if err != nil {
				return err
			}
			if selected != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Mención seleccionada: %s %s\n", selected.Icon, selected.Name)
			}
			return nil
		},
	}
}

func newMencionClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the selected track",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Menciones.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sin mención seleccionada.")
			return nil
		},
	}
}
