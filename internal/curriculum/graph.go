// Package curriculum derives the prerequisite graph of a catalog and answers
// lock-state and progress queries against a caller-owned approved set.
//
// Every function here is a pure computation over a catalog snapshot; nothing
// is cached across calls except the graph itself, which is built once.
package curriculum

import (
	"sort"

	"github.com/alexanderramin/malla/internal/catalog"
	"github.com/alexanderramin/malla/internal/domain"
)

// DanglingRef is a declared prerequisite that does not resolve to a course.
type DanglingRef struct {
	CourseID       string `json:"courseId"`
	PrerequisiteID string `json:"prerequisiteId"`
}

// Graph holds forward (course -> prerequisites) and backward
// (course -> dependents) adjacency for one catalog.
type Graph struct {
	catalog   *catalog.Catalog
	forward   map[string][]string
	backward  map[string][]string
	dangling  []DanglingRef
	loadOrder map[string]int
}

// Build derives the graph from the catalog. Dangling references are kept as
// forward edges and reported by Dangling.
func Build(c *catalog.Catalog) *Graph {
	g := &Graph{
		catalog:   c,
		forward:   make(map[string][]string, c.Len()),
		backward:  make(map[string][]string, c.Len()),
		loadOrder: make(map[string]int, c.Len()),
	}
	for i, course := range c.All() {
		g.loadOrder[course.ID] = i
		g.forward[course.ID] = course.Prerequisites
		for _, pre := range course.Prerequisites {
			if !c.Has(pre) {
				g.dangling = append(g.dangling, DanglingRef{CourseID: course.ID, PrerequisiteID: pre})
			}
			if !containsString(g.backward[pre], course.ID) {
				g.backward[pre] = append(g.backward[pre], course.ID)
			}
		}
	}
	return g
}

// Catalog returns the catalog the graph was built from.
func (g *Graph) Catalog() *catalog.Catalog {
	return g.catalog
}

// Course looks up a course in the underlying catalog.
func (g *Graph) Course(id string) (domain.Course, bool) {
	return g.catalog.Get(id)
}

// DeclaredPrerequisites returns the raw prerequisite ids of a course,
// including ids that do not resolve.
func (g *Graph) DeclaredPrerequisites(id string) []string {
	return append([]string(nil), g.forward[id]...)
}

// Prerequisites resolves the declared prerequisites of id to courses,
// preserving declared order and dropping unresolved ids.
func (g *Graph) Prerequisites(id string) []domain.Course {
	var out []domain.Course
	for _, pre := range g.forward[id] {
		if course, ok := g.catalog.Get(pre); ok {
			out = append(out, course)
		}
	}
	return out
}

// Dependents returns every course that declares id as a prerequisite, in
// catalog order.
func (g *Graph) Dependents(id string) []domain.Course {
	ids := g.backward[id]
	out := make([]domain.Course, 0, len(ids))
	for _, depID := range ids {
		if course, ok := g.catalog.Get(depID); ok {
			out = append(out, course)
		}
	}
	return out
}

// DependentIDs returns the ids of the courses that require id.
func (g *Graph) DependentIDs(id string) []string {
	return append([]string(nil), g.backward[id]...)
}

// Dangling returns the unresolved prerequisite references, in catalog order.
func (g *Graph) Dangling() []DanglingRef {
	return append([]DanglingRef(nil), g.dangling...)
}

// EdgeCount returns the number of declared prerequisite edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, pres := range g.forward {
		n += len(pres)
	}
	return n
}

// FindCycle returns one prerequisite cycle as a closed path
// (first id repeated at the end), or nil when the graph is acyclic.
func (g *Graph) FindCycle() []string {
	const (
		white = 0 // unvisited
		gray  = 1 // on the current path
		black = 2 // done
	)

	color := make(map[string]int, len(g.forward))
	var path []string
	var cycle []string

	var visit func(id string) bool
	visit = func(id string) bool {
		color[id] = gray
		path = append(path, id)
		for _, pre := range g.forward[id] {
			switch color[pre] {
			case gray:
				start := indexOf(path, pre)
				cycle = append(append([]string(nil), path[start:]...), pre)
				return true
			case white:
				if visit(pre) {
					return true
				}
			}
		}
		path = path[:len(path)-1]
		color[id] = black
		return false
	}

	for _, id := range g.catalog.IDs() {
		if color[id] == white && visit(id) {
			return cycle
		}
	}
	return nil
}

// Relation describes how a course relates to the currently selected course.
type Relation int

const (
	RelationNone Relation = iota
	RelationSelected
	RelationPrerequisite
	RelationDependent
)

func (r Relation) String() string {
	switch r {
	case RelationSelected:
		return "selected"
	case RelationPrerequisite:
		return "prerequisite"
	case RelationDependent:
		return "dependent"
	default:
		return "none"
	}
}

// Relation reports whether id is a direct prerequisite of, or a direct
// dependent on, the selected course. An empty selection relates to nothing.
func (g *Graph) Relation(selectedID, id string) Relation {
	if selectedID == "" {
		return RelationNone
	}
	if selectedID == id {
		return RelationSelected
	}
	if containsString(g.forward[selectedID], id) {
		return RelationPrerequisite
	}
	if containsString(g.forward[id], selectedID) {
		return RelationDependent
	}
	return RelationNone
}

// sortByLoadOrder orders ids as they appear in the catalog; unknown ids go last.
func (g *Graph) sortByLoadOrder(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		oi, okI := g.loadOrder[ids[i]]
		oj, okJ := g.loadOrder[ids[j]]
		if okI != okJ {
			return okI
		}
		return oi < oj
	})
}

func containsString(list []string, s string) bool {
	return indexOf(list, s) >= 0
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
