package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/malla/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Ask the curriculum assistant",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.StyleBlue.Render(app.Assistant.Greeting()))
			if !app.interactive() {
				fmt.Fprintln(out, formatter.Dim("Preguntas: malla ask prereqs · malla ask describe <curso>"))
				return nil
			}

			var question string
			if err := questionPickerForm(&question).Run(); err != nil {
				return err
			}
			switch question {
			case questionPrereqs:
				fmt.Fprintln(out, app.Assistant.CoursesWithPrerequisites())
			case questionDescribe:
				return describeInteractively(cmd, app, "")
			}
			return nil
		},
	}

	cmd.AddCommand(newAskPrereqsCmd(app), newAskDescribeCmd(app))

	return cmd
}

func newAskPrereqsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   questionPrereqs,
		Short: "Which courses have prerequisites?",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), app.Assistant.CoursesWithPrerequisites())
			return nil
		},
	}
}

func newAskDescribeCmd(app *App) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   questionDescribe + " [course-id]",
		Short: "Describe a course",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				id, err := resolveCourseID(app, args[0])
				if err != nil {
					return err
				}
				return describe(cmd, app, id)
			}
			return describeInteractively(cmd, app, search)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "q", "", "Narrow the course picker by name")

	return cmd
}

func describe(cmd *cobra.Command, app *App, id string) error {
	answer, err := app.Assistant.Describe(id)
	if err != nil {
		return err
	}
	c, _ := app.Catalog.Graph().Course(id)
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", formatter.Bold(c.Name), answer)
	return nil
}

// describeInteractively picks the course from a form. Without a terminal a
// search that matches exactly one course is answered directly.
func describeInteractively(cmd *cobra.Command, app *App, search string) error {
	courses := app.Assistant.FilterCourses(search)
	switch {
	case len(courses) == 0:
		return fmt.Errorf("no course matches %q", search)
	case len(courses) == 1:
		return describe(cmd, app, courses[0].ID)
	case !app.interactive():
		ids := make([]string, 0, len(courses))
		for _, c := range courses {
			ids = append(ids, c.ID)
		}
		return errors.New("several courses match; pass one of: " + strings.Join(ids, ", "))
	}

	var id string
	if err := coursePickerForm("¿Qué curso?", courses, &id).Run(); err != nil {
		return err
	}
	return describe(cmd, app, id)
}
