package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/malla/internal/app"
	"github.com/alexanderramin/malla/internal/domain"
)

// FormatStatus renders the career progress summary and per-semester stats.
func FormatStatus(p *app.ProgressView, mencion *domain.Mencion) string {
	var b strings.Builder

	b.WriteString(Header("Progreso de la Carrera"))
	b.WriteString("\n")
	b.WriteString(RenderProgress(p.CompletionPercentage, 40))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s aprobados de %d  ·  %s\n",
		Bold(strconv.Itoa(p.Approved)), p.Total,
		ProgressMessage(p.CompletionPercentage, p.Remaining)))
	if mencion != nil {
		b.WriteString(Dim("Mención: ") + mencion.Icon + " " + mencion.Name + "\n")
	}
	b.WriteString("\n")

	rows := make([][]string, 0, len(p.Semesters))
	for _, s := range p.Semesters {
		if s.Total == 0 {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(s.Semester),
			fmt.Sprintf("%d/%d", s.Approved, s.Total),
			StyleYellow.Render(strconv.Itoa(s.Available)),
			StyleRed.Render(strconv.Itoa(s.Locked)),
			RenderProgress(s.Percentage, 10),
		})
	}
	b.WriteString(RenderTable([]string{"SEM", "APROBADOS", "DISPONIBLES", "BLOQUEADOS", "AVANCE"}, rows))
	return b.String()
}

// FormatEligibility lists the courses that can be taken right now.
func FormatEligibility(available []domain.Course, lockedCount int) string {
	var b strings.Builder
	b.WriteString(Header("Cursos disponibles"))
	b.WriteString("\n")
	if len(available) == 0 {
		b.WriteString(Dim("No hay cursos disponibles.") + "\n")
	}
	for _, c := range available {
		b.WriteString(fmt.Sprintf("%s %s  %s %s\n",
			CategoryMarker(c.Category), c.ID, c.Name, Dim(fmt.Sprintf("(S%d)", c.Semester))))
	}
	b.WriteString(Dim(fmt.Sprintf("\n%d cursos bloqueados", lockedCount)) + "\n")
	return b.String()
}
