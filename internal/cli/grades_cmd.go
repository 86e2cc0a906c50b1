package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/malla/internal/cli/formatter"
	"github.com/alexanderramin/malla/internal/grades"
	"github.com/spf13/cobra"
)

func newGradesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "grades",
		Aliases: []string{"notas"},
		Short:   "Simulate course averages from weighted evaluations",
	}

	cmd.AddCommand(
		newGradesShowCmd(app),
		newGradesSetCmd(app),
		newGradesWeightCmd(app),
		newGradesAddCmd(app),
		newGradesRemoveCmd(app),
		newGradesRenameCmd(app),
		newGradesResetCmd(app),
	)

	return cmd
}

func newGradesShowCmd(app *App) *cobra.Command {
	var semester int

	cmd := &cobra.Command{
		Use:   "show [course-id]",
		Short: "Show the evaluations of a course, or the averages of a semester",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 0 {
				if semester == 0 {
					return errors.New("pass a course id or --semester")
				}
				sg, err := app.Grades.SemesterGrades(ctx, semester)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSemesterGrades(sg))
				return nil
			}
			return printCourseGrades(cmd, app, args[0])
		},
	}

	addSemesterFlag(cmd.Flags(), &semester, "Show every course average of this semester")

	return cmd
}

func printCourseGrades(cmd *cobra.Command, app *App, input string) error {
	id, err := resolveCourseID(app, input)
	if err != nil {
		return err
	}
	cg, err := app.Grades.CourseGrades(cmd.Context(), id)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourseGrades(cg))
	return nil
}

// withEvaluation resolves "<course-id> <row>" and hands the evaluation to fn,
// then prints the updated course.
func withEvaluation(app *App, fn func(cmd *cobra.Command, courseID string, e grades.Evaluation, rest []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := resolveCourseID(app, args[0])
		if err != nil {
			return err
		}
		evals, err := app.Grades.Evaluations(cmd.Context(), id)
		if err != nil {
			return err
		}
		e, err := resolveEvaluation(evals, args[1])
		if err != nil {
			return err
		}
		if err := fn(cmd, id, e, args[2:]); err != nil {
			return err
		}
		return printCourseGrades(cmd, app, id)
	}
}

func newGradesSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <course-id> <evaluation#> <grade|->",
		Short: "Set a grade between 1.0 and 7.0; \"-\" clears it",
		Args:  cobra.ExactArgs(3),
		RunE: withEvaluation(app, func(cmd *cobra.Command, courseID string, e grades.Evaluation, rest []string) error {
			g, err := parseGrade(rest[0])
			if err != nil {
				return err
			}
			return app.Grades.SetGrade(cmd.Context(), courseID, e.ID, g)
		}),
	}
}

func newGradesWeightCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "weight <course-id> <evaluation#> <percent>",
		Short: "Set the weight of an evaluation, between 0 and 100",
		Args:  cobra.ExactArgs(3),
		RunE: withEvaluation(app, func(cmd *cobra.Command, courseID string, e grades.Evaluation, rest []string) error {
			w, err := parseWeight(rest[0])
			if err != nil {
				return err
			}
			return app.Grades.SetWeight(cmd.Context(), courseID, e.ID, w)
		}),
	}
}

func newGradesRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <course-id> <evaluation#> <name>",
		Short: "Rename an evaluation",
		Args:  cobra.ExactArgs(3),
		RunE: withEvaluation(app, func(cmd *cobra.Command, courseID string, e grades.Evaluation, rest []string) error {
			return app.Grades.Rename(cmd.Context(), courseID, e.ID, rest[0])
		}),
	}
}

func newGradesRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <course-id> <evaluation#>",
		Aliases: []string{"rm"},
		Short:   "Remove an evaluation",
		Args:    cobra.ExactArgs(2),
		RunE: withEvaluation(app, func(cmd *cobra.Command, courseID string, e grades.Evaluation, _ []string) error {
			return app.Grades.RemoveEvaluation(cmd.Context(), courseID, e.ID)
		}),
	}
}

func newGradesAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <course-id>",
		Short: "Append an evaluation with weight 0",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCourseID(app, args[0])
			if err != nil {
				return err
			}
			if _, err := app.Grades.AddEvaluation(cmd.Context(), id); err != nil {
				return err
			}
			return printCourseGrades(cmd, app, id)
		},
	}
}

func newGradesResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <course-id>",
		Short: "Restore the default evaluations of a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCourseID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Grades.ResetCourse(cmd.Context(), id); err != nil {
				return err
			}
			return printCourseGrades(cmd, app, id)
		},
	}
}
