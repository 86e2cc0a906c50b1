package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/malla/internal/catalog"
	"github.com/alexanderramin/malla/internal/grades"
	"github.com/alexanderramin/malla/internal/service"
)

// resolveCourseID resolves user input to a catalog id. The input can be
// the exact id, the id in any letter case, or a unique id prefix.
func resolveCourseID(app *App, input string) (string, error) {
	c := app.Catalog.Graph().Catalog()
	if c.Has(input) {
		return input, nil
	}

	upper := strings.ToUpper(strings.TrimSpace(input))
	if upper == "" {
		return "", &catalog.NotFoundError{ID: input}
	}
	var matches []string
	for _, id := range c.IDs() {
		if strings.ToUpper(id) == upper {
			return id, nil
		}
		if strings.HasPrefix(strings.ToUpper(id), upper) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", &catalog.NotFoundError{ID: input}
	default:
		return "", fmt.Errorf("ambiguous course id %q matches %s", input, strings.Join(matches, ", "))
	}
}

func resolveCourseIDs(app *App, inputs []string) ([]string, error) {
	ids := make([]string, 0, len(inputs))
	for _, in := range inputs {
		id, err := resolveCourseID(app, in)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// resolveEvaluation maps a 1-based row number, as printed by `grades show`,
// to the evaluation it names.
func resolveEvaluation(evals []grades.Evaluation, input string) (grades.Evaluation, error) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 {
		return grades.Evaluation{}, fmt.Errorf("evaluation must be a row number, got %q", input)
	}
	if n > len(evals) {
		return grades.Evaluation{}, fmt.Errorf("evaluation #%d not found (course has %d)", n, len(evals))
	}
	return evals[n-1], nil
}

// parseGrade reads a grade argument. "-" or an empty string clears it.
func parseGrade(input string) (*float64, error) {
	input = strings.TrimSpace(input)
	if input == "" || input == "-" {
		return nil, nil
	}
	g, err := parseNumber(input)
	if err != nil {
		return nil, fmt.Errorf("%w: grade %q is not a number", service.ErrInvalidInput, input)
	}
	return &g, nil
}

// parseWeight reads a percentage, with or without a trailing "%".
func parseWeight(input string) (float64, error) {
	w, err := parseNumber(strings.TrimSuffix(strings.TrimSpace(input), "%"))
	if err != nil {
		return 0, fmt.Errorf("%w: weight %q is not a number", service.ErrInvalidInput, input)
	}
	return w, nil
}

// parseNumber accepts a decimal comma and rejects NaN and infinities.
func parseNumber(input string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(input, ",", "."), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
