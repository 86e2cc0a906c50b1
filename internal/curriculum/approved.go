package curriculum

// ApprovedSet is the set of course ids a student has completed. The caller
// owns it; functions in this package only read it.
type ApprovedSet map[string]struct{}

// NewApprovedSet builds a set from ids, ignoring repeats.
func NewApprovedSet(ids ...string) ApprovedSet {
	s := make(ApprovedSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership. A nil set is empty.
func (s ApprovedSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids in the set.
func (s ApprovedSet) Len() int {
	return len(s)
}

// With returns a copy of the set that also contains ids.
func (s ApprovedSet) With(ids ...string) ApprovedSet {
	out := make(ApprovedSet, len(s)+len(ids))
	for id := range s {
		out[id] = struct{}{}
	}
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

// IDs returns the members ordered as in the graph's catalog, with ids the
// catalog does not know appended last.
func (s ApprovedSet) IDs(g *Graph) []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	g.sortByLoadOrder(ids)
	return ids
}
