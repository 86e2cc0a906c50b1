package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/malla/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSource = `[
	{"id": "X", "name": "Introducción", "semester": 1, "prerequisites": [], "description": "Base"},
	{"id": "Y", "name": "Avanzado", "semester": 2, "prerequisites": ["X"], "description": "", "category": "titulacion"},
	{"id": "Z", "name": "Seminario avanzado", "semester": 2, "prerequisites": ["X", "Y"], "description": ""}
]`

func TestLoad_Valid(t *testing.T) {
	c, err := Load(strings.NewReader(sampleSource))
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"X", "Y", "Z"}, c.IDs())

	y, ok := c.Get("Y")
	require.True(t, ok)
	assert.Equal(t, "Avanzado", y.Name)
	assert.Equal(t, []string{"X"}, y.Prerequisites)
	assert.Equal(t, domain.CategoryTitulacion, y.Category)

	x, ok := c.Get("X")
	require.True(t, ok)
	assert.Equal(t, domain.CategoryDisciplinario, x.Category, "missing category defaults")
}

func TestLoad_MissingPrerequisitesField(t *testing.T) {
	c, err := Load(strings.NewReader(`[{"id": "A", "name": "A", "semester": 1}]`))
	require.NoError(t, err)
	a, ok := c.Get("A")
	require.True(t, ok)
	assert.Empty(t, a.Prerequisites)
}

func TestLoad_DataFormatErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantMsg string
	}{
		{"not json", `{{`, "invalid JSON"},
		{"not an array", `{"id": "A"}`, "catalog: expected"},
		{"semester wrong type", `[{"id": "A", "name": "A", "semester": "uno"}]`, "courses[0].semester: expected int"},
		{"prerequisites wrong type", `[{"id": "A", "name": "A", "semester": 1, "prerequisites": "B"}]`, "courses[0].prerequisites"},
		{"record not an object", `[1]`, "courses[0]: expected"},
		{"missing name", `[{"id": "A", "semester": 1}]`, "courses[0].name is required"},
		{"duplicate id", `[{"id": "A", "name": "A", "semester": 1}, {"id": "A", "name": "B", "semester": 2}]`, `duplicate course id "A"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(strings.NewReader(tt.source))
			require.Error(t, err)
			assert.Nil(t, c, "no partial catalog")

			var dfe *DataFormatError
			require.True(t, errors.As(err, &dfe), "want DataFormatError, got %T", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad_ReportsEveryProblem(t *testing.T) {
	_, err := Load(strings.NewReader(`[{"id": "", "name": "", "semester": 0}]`))
	var dfe *DataFormatError
	require.ErrorAs(t, err, &dfe)
	assert.Len(t, dfe.Problems, 3)
}

func TestLoadEmbedded(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)
	assert.Greater(t, c.Len(), 40)

	for _, id := range domain.MencionCourseIDs {
		course, ok := c.Get(id)
		require.True(t, ok, "embedded catalog must define %s", id)
		assert.Equal(t, domain.CategoryMencion, course.Category)
	}
	for sem := domain.MinSemester; sem <= domain.MaxSemester; sem++ {
		assert.NotEmpty(t, c.BySemester(sem), "semester %d", sem)
	}
}

func TestCatalog_GetAbsent(t *testing.T) {
	c, err := Parse([]byte(sampleSource))
	require.NoError(t, err)

	_, ok := c.Get("GHOST")
	assert.False(t, ok)
	assert.False(t, c.Has("GHOST"))

	_, err = c.Lookup("GHOST")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCourseNotFound)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "GHOST", nf.ID)
}

func TestCatalog_Immutable(t *testing.T) {
	c, err := Parse([]byte(sampleSource))
	require.NoError(t, err)

	all := c.All()
	all[1].Prerequisites[0] = "MUTATED"
	all[0].Name = "MUTATED"

	y, _ := c.Get("Y")
	assert.Equal(t, []string{"X"}, y.Prerequisites)
	x, _ := c.Get("X")
	assert.Equal(t, "Introducción", x.Name)
}

func TestCatalog_BySemesterAndSearch(t *testing.T) {
	c, err := Parse([]byte(sampleSource))
	require.NoError(t, err)

	sem2 := c.BySemester(2)
	require.Len(t, sem2, 2)
	assert.Equal(t, "Y", sem2[0].ID)
	assert.Equal(t, "Z", sem2[1].ID)
	assert.Empty(t, c.BySemester(9))

	found := c.Search("AVANZ")
	require.Len(t, found, 2)
	assert.Equal(t, "Y", found[0].ID)

	assert.Len(t, c.Search(""), 3)
	assert.Empty(t, c.Search("química"))

	// Spaces are part of the query.
	found = c.Search("seminario ")
	require.Len(t, found, 1)
	assert.Equal(t, "Z", found[0].ID)
	assert.Empty(t, c.Search("avanzado "))
}

func TestCatalog_NilIsEmpty(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.All())
	_, ok := c.Get("X")
	assert.False(t, ok)
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := New([]domain.Course{{ID: "A"}, {ID: "B"}, {ID: "A"}})
	var dfe *DataFormatError
	require.ErrorAs(t, err, &dfe)
	assert.Equal(t, []string{`duplicate course id "A"`}, dfe.Problems)
}
