package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/malla/internal/app"
)

// FormatCourseGrades renders the evaluation table of one course. Rows are
// numbered from 1; that number is how commands address an evaluation.
func FormatCourseGrades(g *app.CourseGrades) string {
	var b strings.Builder
	b.WriteString(Header(g.CourseName))
	b.WriteString("\n")
	b.WriteString(Dim(g.CourseID) + "\n\n")

	rows := make([][]string, 0, len(g.Evaluations))
	for i, e := range g.Evaluations {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.Name,
			FormatGrade(e.Grade),
			fmt.Sprintf("%g%%", e.Weight),
		})
	}
	b.WriteString(RenderTable([]string{"#", "EVALUACIÓN", "NOTA", "PONDERACIÓN"}, rows))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Promedio: %s\n", formatAverage(g.Average)))
	if g.TotalWeight != 100 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("Las ponderaciones suman %g%%", g.TotalWeight)) + "\n")
	}
	return b.String()
}

// FormatSemesterGrades renders each course average of a semester and the
// semester average.
func FormatSemesterGrades(s *app.SemesterGrades) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Simulador de Notas · Semestre %d", s.Semester)))
	b.WriteString("\n")

	rows := make([][]string, 0, len(s.Courses))
	for _, c := range s.Courses {
		rows = append(rows, []string{
			c.CourseID,
			Truncate(c.CourseName, 48),
			strconv.Itoa(len(c.Evaluations)),
			formatAverage(c.Average),
		})
	}
	b.WriteString(RenderTable([]string{"ID", "CURSO", "EVAL.", "PROMEDIO"}, rows))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Promedio Semestre %d: %s\n", s.Semester, Bold(FormatGrade(s.Average))))
	return b.String()
}

func formatAverage(avg *float64) string {
	if avg == nil {
		return Dim("—")
	}
	cg := app.CourseGrades{Average: avg}
	if cg.Passing() {
		return StyleGreen.Render(FormatGrade(avg) + " ✓")
	}
	return StyleRed.Render(FormatGrade(avg) + " ✗")
}
