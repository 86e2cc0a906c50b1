package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/malla/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatMencionList renders every track and the course names it assigns to
// the placeholder courses. selected may be nil.
func FormatMencionList(menciones []domain.Mencion, selected *domain.Mencion) string {
	var b strings.Builder
	b.WriteString(Header("Menciones"))
	b.WriteString("\n")

	for _, m := range menciones {
		marker := "  "
		if selected != nil && selected.ID == m.ID {
			marker = StyleGreen.Render("✓ ")
		}
		name := lipgloss.NewStyle().Foreground(lipgloss.Color(m.Color)).Bold(true).Render(m.Name)
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", marker, m.Icon, name, Dim("("+m.ID+")")))
		for _, id := range domain.MencionCourseIDs {
			if course, ok := m.Courses[id]; ok {
				b.WriteString(fmt.Sprintf("      %s %s\n", Dim(id), course))
			}
		}
	}
	if selected == nil {
		b.WriteString("\n" + Dim("Sin mención seleccionada") + "\n")
	}
	return b.String()
}
