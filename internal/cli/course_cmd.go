package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/malla/internal/cli/formatter"
	"github.com/alexanderramin/malla/internal/curriculum"
	"github.com/spf13/cobra"
)

func newCoursesCmd(app *App) *cobra.Command {
	var semester int
	var search string

	cmd := &cobra.Command{
		Use:     "courses",
		Aliases: []string{"ls"},
		Short:   "List the courses of the study program",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			states, err := courseStates(ctx, app)
			if err != nil {
				return err
			}
			courses := app.Catalog.List(semester, search)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourseList(courses, func(id string) formatter.CourseState {
				return states[id]
			}))
			return nil
		},
	}

	addSemesterFlag(cmd.Flags(), &semester, "Only list courses of this semester")
	cmd.Flags().StringVarP(&search, "search", "q", "", "Filter by name (case-insensitive)")

	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <course-id>",
		Short: "Show a course with its prerequisites and the courses it unlocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCourseID(app, args[0])
			if err != nil {
				return err
			}
			detail, err := app.Catalog.Detail(id)
			if err != nil {
				return err
			}
			states, err := courseStates(cmd.Context(), app)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourseDetail(detail, states[id]))
			return nil
		},
	}
}

func newNextCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "List the courses you can take now",
		RunE: func(cmd *cobra.Command, args []string) error {
			approved, err := app.Progress.Approved(cmd.Context())
			if err != nil {
				return err
			}
			g := app.Catalog.Graph()
			available := curriculum.Available(g, approved)
			locked := curriculum.LockedIDs(g, approved)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEligibility(available, len(locked)))
			return nil
		},
	}
}

// courseStates indexes the current board by course id.
func courseStates(ctx context.Context, app *App) (map[string]formatter.CourseState, error) {
	board, err := app.Progress.Board(ctx)
	if err != nil {
		return nil, err
	}
	states := make(map[string]formatter.CourseState)
	for _, sem := range board.Semesters {
		for _, c := range sem.Courses {
			states[c.ID] = formatter.CourseState{
				DisplayName: c.DisplayName,
				Approved:    c.Approved,
				Locked:      c.Locked,
				Missing:     c.Missing,
			}
		}
	}
	return states, nil
}
