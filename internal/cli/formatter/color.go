package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/malla/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Legend colors of the printed study plan.
var (
	ColorDisciplinario  = lipgloss.Color("#1976D2")
	ColorGeneral        = lipgloss.Color("#FBC02D")
	ColorMencion        = lipgloss.Color("#757575")
	ColorTitulacion     = lipgloss.Color("#7B1FA2")
	ColorProfundizacion = lipgloss.Color("#29B6F6")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryColor returns the legend color of a course category.
func CategoryColor(c domain.Category) lipgloss.Color {
	switch c.OrDefault() {
	case domain.CategoryGeneral:
		return ColorGeneral
	case domain.CategoryMencion:
		return ColorMencion
	case domain.CategoryTitulacion:
		return ColorTitulacion
	case domain.CategoryProfundizacion:
		return ColorProfundizacion
	default:
		return ColorDisciplinario
	}
}

// CategoryMarker returns a colored bar used in front of course names.
func CategoryMarker(c domain.Category) string {
	return lipgloss.NewStyle().Foreground(CategoryColor(c)).Render("▌")
}

// StateIndicator returns the approval/lock marker of a course.
func StateIndicator(approved, locked bool) string {
	switch {
	case approved:
		return StyleGreen.Render("✓")
	case locked:
		return StyleRed.Render("🔒")
	default:
		return StyleYellow.Render("○")
	}
}

// StateLabel is the long form of StateIndicator.
func StateLabel(approved, locked bool) string {
	switch {
	case approved:
		return StyleGreen.Render("● APROBADO")
	case locked:
		return StyleRed.Render("● BLOQUEADO")
	default:
		return StyleYellow.Render("● DISPONIBLE")
	}
}

// Legend renders one line per category with its color marker.
func Legend() string {
	parts := make([]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		parts = append(parts, CategoryMarker(c)+" "+Dim(strings.ToUpper(c.Label())))
	}
	return strings.Join(parts, "  ")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
