// Package grades implements the grade simulator's scoring rules on the
// Chilean 1.0–7.0 scale.
package grades

import (
	"math"
	"strconv"
)

const (
	MinGrade     = 1.0
	MaxGrade     = 7.0
	PassingGrade = 4.0
	MinWeight    = 0.0
	MaxWeight    = 100.0
)

// Evaluation is one graded component of a course. Grade is nil until the
// student enters a value; Weight is a percentage.
type Evaluation struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Grade  *float64 `json:"grade"`
	Weight float64  `json:"weight"`
}

// DefaultEvaluations is the layout a course starts with.
func DefaultEvaluations() []Evaluation {
	return []Evaluation{
		{Name: "Evaluación 1", Weight: 30},
		{Name: "Evaluación 2", Weight: 30},
		{Name: "Examen", Weight: 40},
	}
}

// NextEvaluationName names an evaluation appended after n existing ones.
func NextEvaluationName(n int) string {
	return "Evaluación " + strconv.Itoa(n+1)
}

// ClampGrade bounds g to [MinGrade, MaxGrade] and rounds to one decimal.
// NaN becomes MinGrade.
func ClampGrade(g float64) float64 {
	if math.IsNaN(g) {
		return MinGrade
	}
	g = math.Max(MinGrade, math.Min(MaxGrade, g))
	return math.Round(g*10) / 10
}

// ClampWeight bounds w to [MinWeight, MaxWeight]. NaN becomes MinWeight.
func ClampWeight(w float64) float64 {
	if math.IsNaN(w) {
		return MinWeight
	}
	return math.Max(MinWeight, math.Min(MaxWeight, w))
}

// WeightedAverage returns Σ(grade·weight)/Σ(weight) over evaluations that
// have a grade and a positive weight. ok is false when none qualify.
func WeightedAverage(evals []Evaluation) (avg float64, ok bool) {
	var weighted, total float64
	for _, e := range evals {
		if e.Grade == nil || e.Weight <= 0 {
			continue
		}
		weighted += *e.Grade * e.Weight
		total += e.Weight
	}
	if total <= 0 {
		return 0, false
	}
	return weighted / total, true
}

// SemesterAverage is the plain mean of the course averages that exist.
func SemesterAverage(courseAverages []float64) (avg float64, ok bool) {
	if len(courseAverages) == 0 {
		return 0, false
	}
	var sum float64
	for _, a := range courseAverages {
		sum += a
	}
	return sum / float64(len(courseAverages)), true
}

// IsPassing reports whether avg reaches the passing grade.
func IsPassing(avg float64) bool {
	return avg >= PassingGrade
}

// TotalWeight sums the weights of all evaluations, graded or not.
func TotalWeight(evals []Evaluation) float64 {
	var total float64
	for _, e := range evals {
		total += e.Weight
	}
	return total
}
