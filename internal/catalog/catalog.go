package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/malla/internal/domain"
)

//go:embed data/curriculum.json
var embeddedCurriculum []byte

// Catalog is the immutable, ordered collection of courses of one program.
type Catalog struct {
	courses []domain.Course
	index   map[string]int
}

// New builds a catalog from already validated courses. It fails with a
// DataFormatError when ids are not unique.
func New(courses []domain.Course) (*Catalog, error) {
	c := &Catalog{
		courses: make([]domain.Course, 0, len(courses)),
		index:   make(map[string]int, len(courses)),
	}
	var problems []string
	for _, course := range courses {
		if _, dup := c.index[course.ID]; dup {
			problems = append(problems, (&DuplicateIDError{ID: course.ID}).Error())
			continue
		}
		c.index[course.ID] = len(c.courses)
		c.courses = append(c.courses, course.Clone())
	}
	if len(problems) > 0 {
		return nil, &DataFormatError{Problems: problems}
	}
	return c, nil
}

// Load parses a JSON array of course records into a Catalog.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse is Load over an in-memory source.
func Parse(data []byte) (*Catalog, error) {
	records, err := DecodeRecords(data)
	if err != nil {
		return nil, err
	}
	if errs := Validate(records); len(errs) > 0 {
		return nil, newDataFormatError(errs)
	}
	courses := make([]domain.Course, len(records))
	for i, rec := range records {
		courses[i] = rec.ToCourse()
	}
	return New(courses)
}

// LoadFile reads the catalog from a JSON file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// LoadEmbedded returns the program definition compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	return Parse(embeddedCurriculum)
}

// EmbeddedSource exposes the raw embedded definition, e.g. for integrity checks.
func EmbeddedSource() []byte {
	out := make([]byte, len(embeddedCurriculum))
	copy(out, embeddedCurriculum)
	return out
}

// Get looks a course up by id. Absence is not an error.
func (c *Catalog) Get(id string) (domain.Course, bool) {
	if c == nil {
		return domain.Course{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return domain.Course{}, false
	}
	return c.courses[i].Clone(), true
}

// Lookup is Get for callers that require the course to exist.
func (c *Catalog) Lookup(id string) (domain.Course, error) {
	course, ok := c.Get(id)
	if !ok {
		return domain.Course{}, &NotFoundError{ID: id}
	}
	return course, nil
}

// Has reports whether id belongs to the catalog.
func (c *Catalog) Has(id string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[id]
	return ok
}

// All returns every course in load order.
func (c *Catalog) All() []domain.Course {
	if c == nil {
		return nil
	}
	out := make([]domain.Course, len(c.courses))
	for i, course := range c.courses {
		out[i] = course.Clone()
	}
	return out
}

// IDs returns every course id in load order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, len(c.courses))
	for i, course := range c.courses {
		ids[i] = course.ID
	}
	return ids
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.courses)
}

// BySemester returns the courses of one semester in load order.
func (c *Catalog) BySemester(semester int) []domain.Course {
	var out []domain.Course
	for _, course := range c.All() {
		if course.Semester == semester {
			out = append(out, course)
		}
	}
	return out
}

// Search returns the courses whose name contains query, ignoring case.
// The query is matched as typed, surrounding spaces included. An empty query
// matches everything.
func (c *Catalog) Search(query string) []domain.Course {
	q := strings.ToLower(query)
	var out []domain.Course
	for _, course := range c.All() {
		if strings.Contains(strings.ToLower(course.Name), q) {
			out = append(out, course)
		}
	}
	return out
}
