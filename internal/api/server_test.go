package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/malla/internal/logger"
	"github.com/alexanderramin/malla/internal/service"
	"github.com/alexanderramin/malla/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(Options{
		Mode:    gin.TestMode,
		Logger:  logger.Nop(),
		Catalog: service.NewCatalogService(testutil.NewSampleGraph(t)),
	})
}

func do(t *testing.T, s *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestRoot(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Server is running!", rec.Body.String())
}

func TestListCourses(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/courses")
	require.Equal(t, http.StatusOK, rec.Code)

	var courses []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &courses))
	require.Len(t, courses, 7)
	assert.Equal(t, "MAT101", courses[0]["id"])
	assert.Equal(t, float64(1), courses[0]["semester"])
	assert.Equal(t, []any{}, courses[0]["prerequisites"])
}

func TestGetCourse(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/courses/FIS201")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		ID                string   `json:"id"`
		Name              string   `json:"name"`
		Prerequisites     []string `json:"prerequisites"`
		PrerequisitesData []struct {
			ID string `json:"id"`
		} `json:"prerequisitesData"`
		DependentsData []json.RawMessage `json:"dependentsData"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "FIS201", body.ID)
	assert.Equal(t, "Física II", body.Name)
	assert.Equal(t, []string{"FIS101", "MAT101"}, body.Prerequisites)
	require.Len(t, body.PrerequisitesData, 2)
	assert.Equal(t, "FIS101", body.PrerequisitesData[0].ID)
	assert.NotNil(t, body.DependentsData)
	assert.Empty(t, body.DependentsData)
}

func TestGetCourse_NotFound(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/courses/NOPE")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Course not found"}`, rec.Body.String())
}

func TestProgressEndpoint(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/progress?approved=MAT101,%20FIS101,,GHOST")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		CompletionPercentage int `json:"completionPercentage"`
		Approved             int `json:"approved"`
		Remaining            int `json:"remaining"`
		Semesters            []struct {
			Semester int `json:"semester"`
		} `json:"semesters"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 29, body.CompletionPercentage)
	assert.Equal(t, 2, body.Approved)
	assert.Equal(t, 5, body.Remaining)
	assert.Len(t, body.Semesters, 10)
}

func TestEligibilityEndpoint(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/eligibility?approved=MAT101")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"locked":["FIS201","MAT301","DID_MENCION"],"available":["FIS101","MAT201","CURSO_MENCION_1"]}`,
		rec.Body.String())
}

func TestEligibilityEndpoint_NoApproved(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/eligibility")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body["available"], 3)
}

func TestMencionesEndpoint(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/menciones")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 4)
}

func TestUnknownRoute(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/nothing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}

func TestRequestIDAndCORS(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/courses")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))

	rec = do(t, s, http.MethodOptions, "/api/courses")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	s := NewServer(Options{
		Mode:    gin.TestMode,
		Logger:  logger.New(logger.Config{Level: logger.InfoLevel, Output: &buf}),
		Catalog: service.NewCatalogService(testutil.NewSampleGraph(t)),
	})

	do(t, s, http.MethodGet, "/api/courses/NOPE")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "/api/courses/NOPE", entry["path"])
	assert.Equal(t, float64(404), entry["status"])
	assert.NotEmpty(t, entry["request_id"])
}
