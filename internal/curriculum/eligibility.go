package curriculum

import "github.com/alexanderramin/malla/internal/domain"

// IsLocked reports whether the course has at least one declared prerequisite
// missing from approved. Dangling prerequisites count as missing. An unknown
// course is never locked.
func IsLocked(g *Graph, id string, approved ApprovedSet) bool {
	if _, ok := g.Course(id); !ok {
		return false
	}
	for _, pre := range g.forward[id] {
		if !approved.Has(pre) {
			return true
		}
	}
	return false
}

// CanTake reports whether every declared prerequisite of the course is
// approved. Unlike IsLocked it fails closed: an unknown course cannot be taken.
func CanTake(g *Graph, id string, approved ApprovedSet) bool {
	if _, ok := g.Course(id); !ok {
		return false
	}
	return !IsLocked(g, id, approved)
}

// MissingPrerequisites returns the declared prerequisite ids of the course
// that are not approved, in declared order.
func MissingPrerequisites(g *Graph, id string, approved ApprovedSet) []string {
	var missing []string
	for _, pre := range g.forward[id] {
		if !approved.Has(pre) {
			missing = append(missing, pre)
		}
	}
	return missing
}

// LockedIDs returns the ids of every locked course, in catalog order.
func LockedIDs(g *Graph, approved ApprovedSet) []string {
	var out []string
	for _, id := range g.catalog.IDs() {
		if IsLocked(g, id, approved) {
			out = append(out, id)
		}
	}
	return out
}

// Available returns the courses that are neither approved nor locked.
func Available(g *Graph, approved ApprovedSet) []domain.Course {
	var out []domain.Course
	for _, course := range g.catalog.All() {
		if approved.Has(course.ID) || IsLocked(g, course.ID, approved) {
			continue
		}
		out = append(out, course)
	}
	return out
}

// LockState is the per-course outcome of an eligibility evaluation.
type LockState struct {
	Course   domain.Course
	Approved bool
	Locked   bool
	Missing  []string
}

// Evaluate computes the lock state of every course in one O(V+E) pass.
func Evaluate(g *Graph, approved ApprovedSet) []LockState {
	courses := g.catalog.All()
	out := make([]LockState, 0, len(courses))
	for _, course := range courses {
		missing := MissingPrerequisites(g, course.ID, approved)
		out = append(out, LockState{
			Course:   course,
			Approved: approved.Has(course.ID),
			Locked:   len(missing) > 0,
			Missing:  missing,
		})
	}
	return out
}
