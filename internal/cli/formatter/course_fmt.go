package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/malla/internal/app"
	"github.com/alexanderramin/malla/internal/domain"
)

// CourseState is how a course stands for the current student.
type CourseState struct {
	DisplayName string
	Approved    bool
	Locked      bool
	Missing     []string
}

// FormatCourseList renders courses as a table. state may be nil, in which
// case the state column is left out.
func FormatCourseList(courses []domain.Course, state func(id string) CourseState) string {
	if len(courses) == 0 {
		return Dim("No se encontraron cursos.") + "\n"
	}

	headers := []string{"ID", "SEM", "CURSO", "CATEGORÍA", "REQUISITOS"}
	if state != nil {
		headers = append([]string{" "}, headers...)
	}

	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		name := c.Name
		var row []string
		if state != nil {
			st := state(c.ID)
			if st.DisplayName != "" {
				name = st.DisplayName
			}
			row = append(row, StateIndicator(st.Approved, st.Locked))
		}
		prereqs := Dim("—")
		if c.HasPrerequisites() {
			prereqs = strings.Join(c.Prerequisites, ", ")
		}
		row = append(row,
			c.ID,
			strconv.Itoa(c.Semester),
			CategoryMarker(c.Category)+" "+Truncate(name, 48),
			Dim(c.Category.OrDefault().Label()),
			prereqs,
		)
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString(Dim(fmt.Sprintf("\n%d cursos", len(courses))))
	b.WriteString("\n")
	return b.String()
}

// FormatCourseDetail renders a course with its prerequisites and the
// courses it unlocks.
func FormatCourseDetail(d *app.CourseDetail, st CourseState) string {
	var b strings.Builder

	name := d.Name
	if st.DisplayName != "" {
		name = st.DisplayName
	}
	b.WriteString(Header(name))
	b.WriteString("\n")
	if name != d.Name {
		b.WriteString(Dim("Nombre original: "+d.Name) + "\n")
	}
	b.WriteString(fmt.Sprintf("%s  %s  %s %s\n",
		Bold(d.ID),
		Dim(fmt.Sprintf("Semestre %d", d.Semester)),
		CategoryMarker(d.Category),
		d.Category.OrDefault().Label(),
	))
	b.WriteString(StateLabel(st.Approved, st.Locked) + "\n")

	if desc := strings.TrimSpace(d.Description); desc != "" {
		b.WriteString("\n" + desc + "\n")
	}

	b.WriteString("\n" + StyleHeader.Render("Requisitos") + "\n")
	if len(d.Prerequisites) == 0 {
		b.WriteString(Dim("  Sin requisitos") + "\n")
	}
	resolved := make(map[string]domain.Course, len(d.PrerequisitesData))
	for _, p := range d.PrerequisitesData {
		resolved[p.ID] = p
	}
	missing := make(map[string]bool, len(st.Missing))
	for _, id := range st.Missing {
		missing[id] = true
	}
	for _, id := range d.Prerequisites {
		p, ok := resolved[id]
		switch {
		case !ok:
			b.WriteString(fmt.Sprintf("  %s %s %s\n", StyleDim.Render("?"), id, Dim("(no existe en la malla)")))
		case missing[id]:
			b.WriteString(fmt.Sprintf("  %s %s  %s\n", StyleRed.Render("✗"), p.ID, p.Name))
		default:
			b.WriteString(fmt.Sprintf("  %s %s  %s\n", StyleGreen.Render("✓"), p.ID, p.Name))
		}
	}

	b.WriteString("\n" + StyleHeader.Render("Habilita") + "\n")
	if len(d.DependentsData) == 0 {
		b.WriteString(Dim("  Ningún curso depende de este") + "\n")
	}
	for _, c := range d.DependentsData {
		b.WriteString(fmt.Sprintf("  → %s  %s %s\n", c.ID, c.Name, Dim(fmt.Sprintf("(S%d)", c.Semester))))
	}
	return b.String()
}
