package api

import (
	"net/http"
	"strings"

	"github.com/alexanderramin/malla/internal/curriculum"
	"github.com/alexanderramin/malla/internal/domain"
	"github.com/alexanderramin/malla/internal/service"
	"github.com/gin-gonic/gin"
)

type handlers struct {
	catalog service.CatalogService
}

func (h *handlers) listCourses(c *gin.Context) {
	courses := h.catalog.Graph().Catalog().All()
	if courses == nil {
		courses = []domain.Course{}
	}
	c.JSON(http.StatusOK, courses)
}

func (h *handlers) getCourse(c *gin.Context) {
	detail, err := h.catalog.Detail(c.Param("id"))
	if err != nil {
		handleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// progress and eligibility are stateless: the approved set comes from the
// query string as a comma-separated list of ids.
func (h *handlers) progress(c *gin.Context) {
	approved := parseApproved(c.Query("approved"))
	c.JSON(http.StatusOK, service.BuildProgressView(h.catalog.Graph(), approved))
}

func (h *handlers) eligibility(c *gin.Context) {
	approved := parseApproved(c.Query("approved"))
	c.JSON(http.StatusOK, service.BuildEligibilityView(h.catalog.Graph(), approved))
}

func (h *handlers) menciones(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Menciones)
}

func parseApproved(raw string) curriculum.ApprovedSet {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return curriculum.NewApprovedSet(ids...)
}
