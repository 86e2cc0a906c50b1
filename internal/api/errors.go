package api

import (
	"errors"
	"net/http"

	"github.com/alexanderramin/malla/internal/catalog"
	"github.com/alexanderramin/malla/internal/service"
	"github.com/gin-gonic/gin"
)

// errorBody is the JSON shape of every error response.
func errorBody(msg string) gin.H {
	return gin.H{"error": msg}
}

// handleAPIError maps domain errors onto HTTP responses.
func handleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, errorBody("Course not found"))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorBody("Internal server error"))
	}
}
