package curriculum

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/malla/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLocked_SimpleUnlock(t *testing.T) {
	g := Build(mustCatalog(t, course("X"), course("Y", "X")))

	empty := NewApprovedSet()
	assert.True(t, IsLocked(g, "Y", empty))
	assert.False(t, IsLocked(g, "X", empty))

	approved := NewApprovedSet("X")
	assert.False(t, IsLocked(g, "Y", approved))
}

func TestIsLocked_DanglingPrerequisiteStaysLocked(t *testing.T) {
	g := Build(mustCatalog(t, course("Y", "GHOST")))

	assert.Empty(t, g.Prerequisites("Y"))
	assert.True(t, IsLocked(g, "Y", NewApprovedSet()))
	assert.True(t, IsLocked(g, "Y", nil), "nil set behaves as empty")
	assert.Equal(t, []string{"GHOST"}, MissingPrerequisites(g, "Y", NewApprovedSet()))
}

func TestIsLocked_RequiresEveryPrerequisite(t *testing.T) {
	g := Build(mustCatalog(t, course("A"), course("B"), course("C", "A", "B")))

	assert.True(t, IsLocked(g, "C", NewApprovedSet("A")))
	assert.True(t, IsLocked(g, "C", NewApprovedSet("B")))
	assert.False(t, IsLocked(g, "C", NewApprovedSet("A", "B")))
}

func TestUnknownCourse_LockedFailsOpenCanTakeFailsClosed(t *testing.T) {
	g := Build(mustCatalog(t, course("A")))

	assert.False(t, IsLocked(g, "NOPE", NewApprovedSet()))
	assert.False(t, CanTake(g, "NOPE", NewApprovedSet()))
	assert.False(t, CanTake(g, "NOPE", NewApprovedSet("A", "NOPE")))
}

func TestCanTake(t *testing.T) {
	g := Build(mustCatalog(t, course("X"), course("Y", "X")))

	assert.True(t, CanTake(g, "X", NewApprovedSet()))
	assert.False(t, CanTake(g, "Y", NewApprovedSet()))
	assert.True(t, CanTake(g, "Y", NewApprovedSet("X")))
}

func TestLockedIDsAndAvailable(t *testing.T) {
	g := Build(mustCatalog(t,
		course("A"),
		course("B", "A"),
		course("C", "B"),
		course("D"),
	))

	approved := NewApprovedSet("A")
	assert.Equal(t, []string{"C"}, LockedIDs(g, approved))
	assert.Equal(t, []string{"B", "D"}, courseIDs(Available(g, approved)))

	assert.Equal(t, []string{"B", "C"}, LockedIDs(g, NewApprovedSet()))
}

func TestEvaluate(t *testing.T) {
	g := Build(mustCatalog(t, course("A"), course("B", "A", "GHOST")))

	states := Evaluate(g, NewApprovedSet("A"))
	require.Len(t, states, 2)

	assert.True(t, states[0].Approved)
	assert.False(t, states[0].Locked)

	assert.False(t, states[1].Approved)
	assert.True(t, states[1].Locked)
	assert.Equal(t, []string{"GHOST"}, states[1].Missing)
}

// TestNoPrerequisiteCoursesNeverLocked holds for any approved set.
func TestNoPrerequisiteCoursesNeverLocked(t *testing.T) {
	c, err := catalog.LoadEmbedded()
	require.NoError(t, err)
	g := Build(c)
	ids := c.IDs()
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		approved := randomSubset(rng, ids)
		for _, course := range c.All() {
			if course.HasPrerequisites() {
				continue
			}
			assert.False(t, IsLocked(g, course.ID, approved), "trial %d: %s", trial, course.ID)
		}
	}
}

// TestLockMonotonicity checks that growing the approved set never re-locks a
// course: S1 ⊆ S2 and locked under S2 implies locked under S1.
func TestLockMonotonicity(t *testing.T) {
	c, err := catalog.LoadEmbedded()
	require.NoError(t, err)
	g := Build(c)
	ids := c.IDs()
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		small := randomSubset(rng, ids)
		large := small.With(randomSubset(rng, ids).IDs(g)...)

		for _, id := range ids {
			if IsLocked(g, id, large) {
				assert.True(t, IsLocked(g, id, small),
					"trial %d: %s locked under superset but not under subset", trial, id)
			}
		}
	}
}

func randomSubset(rng *rand.Rand, ids []string) ApprovedSet {
	s := NewApprovedSet()
	for _, id := range ids {
		if rng.Intn(2) == 1 {
			s[id] = struct{}{}
		}
	}
	return s
}

func TestApprovedSet(t *testing.T) {
	g := Build(mustCatalog(t, course("A"), course("B"), course("C")))

	s := NewApprovedSet("C", "A", "A", "ZZZ")
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has("A"))
	assert.False(t, s.Has("B"))
	assert.Equal(t, []string{"A", "C", "ZZZ"}, s.IDs(g))

	grown := s.With("B")
	assert.True(t, grown.Has("B"))
	assert.False(t, s.Has("B"), "With does not mutate the receiver")

	var nilSet ApprovedSet
	assert.False(t, nilSet.Has("A"))
	assert.Zero(t, nilSet.Len())
}
