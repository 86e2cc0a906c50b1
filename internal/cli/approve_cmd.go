package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/malla/internal/cli/formatter"
	"github.com/alexanderramin/malla/internal/curriculum"
	"github.com/spf13/cobra"
)

func newApproveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <course-id>...",
		Short: "Mark courses as approved",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := resolveCourseIDs(app, args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			before, err := app.Progress.Approved(ctx)
			if err != nil {
				return err
			}
			if err := app.Progress.Approve(ctx, ids...); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			g := app.Catalog.Graph()
			for _, id := range ids {
				fmt.Fprintf(out, "%s %s aprobado\n", formatter.StyleGreen.Render("✓"), id)
				if curriculum.IsLocked(g, id, before) {
					missing := curriculum.MissingPrerequisites(g, id, before)
					fmt.Fprintln(out, formatter.StyleYellow.Render(
						"  ! aún faltan requisitos: "+strings.Join(missing, ", ")))
				}
			}
			return printUnlocked(cmd, app, before)
		},
	}
}

// printUnlocked reports the courses that became available since before.
func printUnlocked(cmd *cobra.Command, app *App, before curriculum.ApprovedSet) error {
	after, err := app.Progress.Approved(cmd.Context())
	if err != nil {
		return err
	}
	g := app.Catalog.Graph()
	was := make(map[string]bool)
	for _, c := range curriculum.Available(g, before) {
		was[c.ID] = true
	}
	for _, c := range curriculum.Available(g, after) {
		if !was[c.ID] {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", formatter.StyleBlue.Render("→"), c.ID, formatter.Dim("desbloqueado: "+c.Name))
		}
	}
	return nil
}

func newUnapproveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unapprove <course-id>...",
		Short: "Remove the approval of courses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]string, 0, len(args))
			for _, in := range args {
				id, err := resolveCourseID(app, in)
				if err != nil {
					// Stale ids from an older catalog can still be removed.
					id = in
				}
				ids = append(ids, id)
			}
			if err := app.Progress.Unapprove(cmd.Context(), ids...); err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s sin aprobar\n", formatter.Dim("○"), id)
			}
			return nil
		},
	}
}

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <course-id>",
		Short: "Flip the approval of a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCourseID(app, args[0])
			if err != nil {
				return err
			}
			approved, err := app.Progress.Toggle(cmd.Context(), id)
			if err != nil {
				return err
			}
			if approved {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s aprobado\n", formatter.StyleGreen.Render("✓"), id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s sin aprobar\n", formatter.Dim("○"), id)
			}
			return nil
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear every approved course",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !app.interactive() {
					return errors.New("reset clears all approvals; pass --yes to confirm")
				}
				confirmed := false
				if err := confirmForm("¿Borrar todos los cursos aprobados?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelado."))
					return nil
				}
			}
			if err := app.Progress.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Progreso reiniciado.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func newRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <course-id> [name]",
		Short: "Give a course a custom display name; omit the name to clear it",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCourseID(app, args[0])
			if err != nil {
				return err
			}
			name := ""
			if len(args) == 2 {
				name = strings.TrimSpace(args[1])
			}
			if err := app.Progress.SetCustomName(cmd.Context(), id, name); err != nil {
				return err
			}
			if name == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Nombre personalizado de %s eliminado.\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s ahora se muestra como %q.\n", id, name)
			}
			return nil
		},
	}
}
