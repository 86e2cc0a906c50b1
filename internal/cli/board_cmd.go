package cli

import (
	"fmt"

	"github.com/alexanderramin/malla/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var static bool
	var columns int

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the semester board; interactive on a terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if static || !app.interactive() {
				board, err := app.Progress.Board(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBoard(board, formatter.BoardOptions{Columns: columns}))
				return nil
			}

			if app.DivertLogs != nil {
				defer app.DivertLogs()()
			}
			p := tea.NewProgram(newBoardModel(cmd.Context(), app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&static, "static", false, "Print the board once instead of opening it")
	cmd.Flags().IntVar(&columns, "columns", 3, "Semesters per row in static mode")

	return cmd
}
