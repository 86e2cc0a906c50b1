package cli

import (
	"fmt"

	"github.com/alexanderramin/malla/internal/cli/formatter"
	"github.com/alexanderramin/malla/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// mallaHuhTheme returns a huh theme matching the formatter palette.
func mallaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func confirmForm(title string, value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Sí").
				Negative("No").
				Value(value),
		),
	).WithTheme(mallaHuhTheme()).WithShowHelp(false)
}

// mencionPickerForm offers every track. The value is left untouched when
// the form is aborted.
func mencionPickerForm(menciones []domain.Mencion, result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(menciones))
	for _, m := range menciones {
		options = append(options, huh.NewOption(m.Icon+" "+m.Name, m.ID))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("¿Cuál es tu mención?").
				Options(options...).
				Value(result),
		),
	).WithTheme(mallaHuhTheme()).WithShowHelp(false)
}

// coursePickerForm lets the user pick one course; huh's built-in filter
// covers search by name.
func coursePickerForm(title string, courses []domain.Course, result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(courses))
	for _, c := range courses {
		options = append(options, huh.NewOption(fmt.Sprintf("%s · %s", c.ID, c.Name), c.ID))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Height(12).
				Value(result),
		),
	).WithTheme(mallaHuhTheme()).WithShowHelp(true)
}

const (
	questionPrereqs  = "prereqs"
	questionDescribe = "describe"
)

func questionPickerForm(result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("¿En qué puedo ayudarte?").
				Options(
					huh.NewOption("¿Qué cursos tienen requisitos?", questionPrereqs),
					huh.NewOption("Describir un curso", questionDescribe),
				).
				Value(result),
		),
	).WithTheme(mallaHuhTheme()).WithShowHelp(false)
}
