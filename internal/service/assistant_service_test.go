package service

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/malla/internal/catalog"
	"github.com/alexanderramin/malla/internal/domain"
	"github.com/alexanderramin/malla/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssistant_Greeting(t *testing.T) {
	svc := NewAssistantService(testutil.NewSampleGraph(t).Catalog())
	assert.Equal(t, "¡Hola! Soy tu asistente curricular. ¿En qué puedo ayudarte?", svc.Greeting())
}

func TestAssistant_CoursesWithPrerequisites_FewCourses(t *testing.T) {
	svc := NewAssistantService(testutil.NewSampleGraph(t).Catalog())
	assert.Equal(t,
		"Hay 4 cursos con requisitos. Algunos son: Cálculo II, Física II, Ecuaciones Diferenciales, Didáctica de la Mención.",
		svc.CoursesWithPrerequisites())
}

func TestAssistant_CoursesWithPrerequisites_ManyCourses(t *testing.T) {
	courses := []domain.Course{testutil.NewTestCourse("BASE", "Base", 1)}
	for i := 1; i <= 7; i++ {
		courses = append(courses, testutil.NewTestCourse(
			fmt.Sprintf("C%d", i), fmt.Sprintf("Curso %d", i), 2, testutil.WithPrerequisites("BASE")))
	}
	svc := NewAssistantService(testutil.NewTestCatalog(t, courses...))

	assert.Equal(t,
		"Hay 7 cursos con requisitos. Algunos son: Curso 1, Curso 2, Curso 3, Curso 4, Curso 5. ...y 2 más.",
		svc.CoursesWithPrerequisites())
}

func TestAssistant_CoursesWithPrerequisites_None(t *testing.T) {
	svc := NewAssistantService(testutil.NewTestCatalog(t, testutil.NewTestCourse("A", "A", 1)))
	assert.Equal(t, "No hay cursos con requisitos.", svc.CoursesWithPrerequisites())
}

func TestAssistant_Describe(t *testing.T) {
	svc := NewAssistantService(testutil.NewSampleGraph(t).Catalog())

	desc, err := svc.Describe("MAT101")
	require.NoError(t, err)
	assert.Equal(t, "Límites, derivadas e integrales.", desc)

	desc, err = svc.Describe("FIS101")
	require.NoError(t, err)
	assert.Equal(t, "Lo siento, no tengo información detallada sobre este curso en mi base de datos.", desc)

	_, err = svc.Describe("NOPE")
	assert.ErrorIs(t, err, catalog.ErrCourseNotFound)
}

func TestAssistant_FilterCourses(t *testing.T) {
	svc := NewAssistantService(testutil.NewSampleGraph(t).Catalog())

	assert.Len(t, svc.FilterCourses("física"), 2)
	assert.Len(t, svc.FilterCourses(""), 7)
	assert.Empty(t, svc.FilterCourses("química"))
}
