package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/malla/internal/app"
	"github.com/charmbracelet/lipgloss"
)

// BoardOptions controls the semester grid layout.
type BoardOptions struct {
	// Columns is how many semesters sit side by side. Zero means 3.
	Columns int
	// CardWidth is the inner width of a semester card. Zero means 30.
	CardWidth int
	// Cursor highlights one course id, for the interactive board.
	Cursor string
}

// FormatBoard renders the whole program as a grid of semester cards
// headed by the career progress bar.
func FormatBoard(view *app.BoardView, opts BoardOptions) string {
	if opts.Columns <= 0 {
		opts.Columns = 3
	}
	if opts.CardWidth <= 0 {
		opts.CardWidth = 30
	}

	var b strings.Builder
	b.WriteString(formatBoardHeader(view))
	b.WriteString("\n\n")

	cards := make([]string, 0, len(view.Semesters))
	for _, sem := range view.Semesters {
		cards = append(cards, renderSemesterCard(sem, opts))
	}
	for i := 0; i < len(cards); i += opts.Columns {
		end := min(i+opts.Columns, len(cards))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
		b.WriteString("\n")
	}

	b.WriteString("\n" + Legend() + "\n")
	return b.String()
}

func formatBoardHeader(view *app.BoardView) string {
	p := view.Progress
	line := fmt.Sprintf("%s  %s  %s",
		Bold("Progreso de la Carrera"),
		RenderProgress(p.CompletionPercentage, 30),
		Dim(ProgressMessage(p.CompletionPercentage, p.Remaining)),
	)
	if view.Mencion != nil {
		line += "\n" + Dim("Mención: ") + view.Mencion.Icon + " " + view.Mencion.Name
	}
	return line
}

func renderSemesterCard(sem app.BoardSemester, opts BoardOptions) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Width(opts.CardWidth).
		PaddingLeft(1).
		PaddingRight(1)

	title := StyleHeader.Render(fmt.Sprintf("Semestre %d", sem.Semester))
	count := Dim(fmt.Sprintf("%d/%d", sem.Stat.Approved, sem.Stat.Total))
	gap := max(opts.CardWidth-2-lipgloss.Width(title)-lipgloss.Width(count), 1)

	lines := []string{title + strings.Repeat(" ", gap) + count}
	for _, c := range sem.Courses {
		name := Truncate(c.DisplayName, opts.CardWidth-6)
		text := name
		switch {
		case c.Approved:
			text = StyleGreen.Render(name)
		case c.Locked:
			text = StyleDim.Render(name)
		}
		line := CategoryMarker(c.Category) + StateIndicator(c.Approved, c.Locked) + " " + text
		if c.ID == opts.Cursor {
			line = lipgloss.NewStyle().Reverse(true).Render("▸") + line
		} else {
			line = " " + line
		}
		lines = append(lines, line)
	}
	return border.Render(strings.Join(lines, "\n"))
}
