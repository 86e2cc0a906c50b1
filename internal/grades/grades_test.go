package grades

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grade(g float64) *float64 { return &g }

func TestWeightedAverage(t *testing.T) {
	avg, ok := WeightedAverage([]Evaluation{
		{Grade: grade(5.0), Weight: 30},
		{Grade: grade(6.0), Weight: 70},
	})
	require.True(t, ok)
	assert.InDelta(t, 5.7, avg, 1e-9)
}

func TestWeightedAverage_SkipsUngradedAndZeroWeight(t *testing.T) {
	avg, ok := WeightedAverage([]Evaluation{
		{Grade: grade(4.0), Weight: 30},
		{Grade: nil, Weight: 30},
		{Grade: grade(1.0), Weight: 0},
		{Grade: grade(7.0), Weight: 10},
	})
	require.True(t, ok)
	assert.InDelta(t, (4.0*30+7.0*10)/40, avg, 1e-9)
}

func TestWeightedAverage_NoData(t *testing.T) {
	tests := []struct {
		name  string
		evals []Evaluation
	}{
		{"nil", nil},
		{"defaults without grades", DefaultEvaluations()},
		{"graded with zero weight", []Evaluation{{Grade: grade(6), Weight: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := WeightedAverage(tt.evals)
			assert.False(t, ok)
		})
	}
}

func TestClampGrade(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 1},
		{-3, 1},
		{1, 1},
		{4.44, 4.4},
		{4.45, 4.5},
		{6.96, 7},
		{9.5, 7},
		{math.Inf(1), 7},
		{math.Inf(-1), 1},
		{math.NaN(), 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, ClampGrade(tt.in), 1e-9, "in=%v", tt.in)
	}
}

func TestClampWeight(t *testing.T) {
	assert.Equal(t, 0.0, ClampWeight(-5))
	assert.Equal(t, 35.0, ClampWeight(35))
	assert.Equal(t, 100.0, ClampWeight(140))
	assert.Equal(t, 100.0, ClampWeight(math.Inf(1)))
	assert.Equal(t, 0.0, ClampWeight(math.NaN()))
}

func TestSemesterAverage(t *testing.T) {
	_, ok := SemesterAverage(nil)
	assert.False(t, ok)

	avg, ok := SemesterAverage([]float64{4.0, 6.0, 5.5})
	require.True(t, ok)
	assert.InDelta(t, 5.1666, avg, 1e-3)
}

func TestIsPassing(t *testing.T) {
	assert.True(t, IsPassing(4.0))
	assert.True(t, IsPassing(6.2))
	assert.False(t, IsPassing(3.95))
}

func TestDefaultsAndNames(t *testing.T) {
	defaults := DefaultEvaluations()
	require.Len(t, defaults, 3)
	assert.Equal(t, "Examen", defaults[2].Name)
	assert.Equal(t, 100.0, TotalWeight(defaults))
	assert.Equal(t, "Evaluación 4", NextEvaluationName(len(defaults)))
}
