package domain

// Course is a single entry of the study program. Courses are immutable once
// the catalog has been loaded.
type Course struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Semester      int      `json:"semester"`
	Prerequisites []string `json:"prerequisites"`
	Description   string   `json:"description"`
	Category      Category `json:"category"`
}

// HasPrerequisites reports whether the course declares at least one prerequisite.
func (c Course) HasPrerequisites() bool {
	return len(c.Prerequisites) > 0
}

// DeclaresPrerequisite reports whether id appears in the declared prerequisite list.
func (c Course) DeclaresPrerequisite(id string) bool {
	for _, p := range c.Prerequisites {
		if p == id {
			return true
		}
	}
	return false
}

// Clone returns a copy that does not share the prerequisite slice.
func (c Course) Clone() Course {
	out := c
	if c.Prerequisites != nil {
		out.Prerequisites = append([]string(nil), c.Prerequisites...)
	}
	return out
}
