package testutil

import (
	"testing"

	"github.com/alexanderramin/malla/internal/catalog"
	"github.com/alexanderramin/malla/internal/curriculum"
	"github.com/alexanderramin/malla/internal/domain"
	"github.com/alexanderramin/malla/internal/grades"
	"github.com/google/uuid"
)

// Course options
type CourseOption func(*domain.Course)

func WithPrerequisites(ids ...string) CourseOption {
	return func(c *domain.Course) {
		c.Prerequisites = ids
	}
}

func WithDescription(d string) CourseOption {
	return func(c *domain.Course) {
		c.Description = d
	}
}

func WithCategory(cat domain.Category) CourseOption {
	return func(c *domain.Course) {
		c.Category = cat
	}
}

func NewTestCourse(id, name string, semester int, opts ...CourseOption) domain.Course {
	c := domain.Course{
		ID:            id,
		Name:          name,
		Semester:      semester,
		Prerequisites: []string{},
		Category:      domain.CategoryDisciplinario,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewTestCatalog builds a catalog from courses, failing the test on error.
func NewTestCatalog(t *testing.T, courses ...domain.Course) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(courses)
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return c
}

// SampleCourses is a small acyclic program:
//
//	MAT101 -> MAT201 -> MAT301
//	MAT101, FIS101 -> FIS201
//	CURSO_MENCION_1 -> DID_MENCION
func SampleCourses() []domain.Course {
	return []domain.Course{
		NewTestCourse("MAT101", "Cálculo I", 1, WithDescription("Límites, derivadas e integrales.")),
		NewTestCourse("FIS101", "Física I", 1, WithCategory(domain.CategoryGeneral)),
		NewTestCourse("MAT201", "Cálculo II", 2, WithPrerequisites("MAT101")),
		NewTestCourse("FIS201", "Física II", 2, WithPrerequisites("FIS101", "MAT101")),
		NewTestCourse("MAT301", "Ecuaciones Diferenciales", 3, WithPrerequisites("MAT201")),
		NewTestCourse(domain.MencionCourse1, "Curso de Mención I", 3, WithCategory(domain.CategoryMencion)),
		NewTestCourse(domain.MencionDidactic, "Didáctica de la Mención", 4,
			WithPrerequisites(domain.MencionCourse1), WithCategory(domain.CategoryMencion)),
	}
}

// NewSampleGraph builds the graph of SampleCourses.
func NewSampleGraph(t *testing.T) *curriculum.Graph {
	t.Helper()
	return curriculum.Build(NewTestCatalog(t, SampleCourses()...))
}

// NewTestEvaluations returns the default evaluation layout with fresh ids.
func NewTestEvaluations() []grades.Evaluation {
	evals := grades.DefaultEvaluations()
	for i := range evals {
		evals[i].ID = uuid.New().String()
	}
	return evals
}
