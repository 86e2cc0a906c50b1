package curriculum

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/malla/internal/catalog"
	"github.com/alexanderramin/malla/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionPercentage(t *testing.T) {
	c := mustCatalog(t, course("A"), course("B"), course("C"))

	tests := []struct {
		name     string
		approved ApprovedSet
		want     int
	}{
		{"none", NewApprovedSet(), 0},
		{"nil set", nil, 0},
		{"one of three rounds down", NewApprovedSet("A"), 33},
		{"two of three rounds up", NewApprovedSet("A", "B"), 67},
		{"all", NewApprovedSet("A", "B", "C"), 100},
		{"unknown ids ignored", NewApprovedSet("A", "X", "Y", "Z"), 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompletionPercentage(c, tt.approved))
		})
	}
}

func TestCompletionPercentage_EmptyCatalog(t *testing.T) {
	assert.Equal(t, 0, CompletionPercentage(mustCatalog(t), NewApprovedSet("A")))
	assert.Equal(t, 0, CompletionPercentage(nil, NewApprovedSet("A")))
}

func TestCompletionPercentage_Bounds(t *testing.T) {
	c, err := catalog.LoadEmbedded()
	require.NoError(t, err)
	ids := c.IDs()
	rng := rand.New(rand.NewSource(3))

	assert.Equal(t, 0, CompletionPercentage(c, NewApprovedSet()))
	assert.Equal(t, 100, CompletionPercentage(c, NewApprovedSet(ids...)))

	for trial := 0; trial < 100; trial++ {
		approved := randomSubset(rng, ids).With("NOT_A_COURSE")
		pct := CompletionPercentage(c, approved)
		assert.GreaterOrEqual(t, pct, 0)
		assert.LessOrEqual(t, pct, 100)
	}
}

func TestRemaining(t *testing.T) {
	c := mustCatalog(t, course("A"), course("B"), course("C"))
	assert.Equal(t, 3, Remaining(c, nil))
	assert.Equal(t, 2, Remaining(c, NewApprovedSet("A", "GHOST")))
	assert.Equal(t, 0, Remaining(c, NewApprovedSet("A", "B", "C")))
}

func TestSemesterStats(t *testing.T) {
	courses := []domain.Course{
		{ID: "A", Semester: 1},
		{ID: "B", Semester: 1},
		{ID: "C", Semester: 2, Prerequisites: []string{"A"}},
		{ID: "D", Semester: 2, Prerequisites: []string{"B"}},
		{ID: "E", Semester: 2},
	}
	g := Build(mustCatalog(t, courses...))

	stats := SemesterStats(g, NewApprovedSet("A"))
	require.Len(t, stats, domain.MaxSemester)

	assert.Equal(t, SemesterStat{Semester: 1, Total: 2, Approved: 1, Available: 1, Percentage: 50}, stats[0])
	assert.Equal(t, SemesterStat{Semester: 2, Total: 3, Locked: 1, Available: 2}, stats[1])
	assert.Equal(t, SemesterStat{Semester: 10}, stats[9])
}
