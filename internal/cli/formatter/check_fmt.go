package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/malla/internal/app"
)

// FormatIntegrityReport renders the findings of a catalog check.
func FormatIntegrityReport(r *app.IntegrityReport) string {
	var b strings.Builder
	b.WriteString(Header("Catalog check"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d courses\n", r.CourseCount))

	if len(r.Problems) > 0 {
		b.WriteString("\n" + StyleRed.Render("Problems") + "\n")
		for _, p := range r.Problems {
			b.WriteString("  ✗ " + p + "\n")
		}
	}
	if len(r.Duplicates) > 0 {
		b.WriteString("\n" + StyleRed.Render("Duplicate ids") + "\n")
		for _, id := range r.Duplicates {
			b.WriteString("  ✗ " + id + "\n")
		}
	}
	if len(r.Cycle) > 0 {
		b.WriteString("\n" + StyleRed.Render("Prerequisite cycle") + "\n")
		b.WriteString("  ✗ " + strings.Join(r.Cycle, " -> ") + "\n")
	}
	if len(r.Dangling) > 0 {
		b.WriteString("\n" + StyleYellow.Render("Unknown prerequisites") + "\n")
		for _, d := range r.Dangling {
			b.WriteString(fmt.Sprintf("  ! %s requires %s\n", d.CourseID, d.PrerequisiteID))
		}
	}

	b.WriteString("\n")
	switch {
	case r.Fatal():
		b.WriteString(StyleRed.Render("✗ catalog is not valid") + "\n")
	case len(r.Dangling) > 0:
		b.WriteString(StyleYellow.Render("✓ catalog is usable, with warnings") + "\n")
	default:
		b.WriteString(StyleGreen.Render("✓ no duplicate ids, every prerequisite resolves") + "\n")
	}
	return b.String()
}
