// Package api exposes the curriculum over a small read-only HTTP API.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alexanderramin/malla/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Server holds the state for the HTTP server.
type Server struct {
	addr    string
	router  *gin.Engine
	logger  zerolog.Logger
	http    *http.Server
	timeout time.Duration
}

// Options configures NewServer. Mode is a gin mode name.
type Options struct {
	Addr    string
	Mode    string
	Logger  zerolog.Logger
	Catalog service.CatalogService
}

// NewServer builds the router and registers every route.
func NewServer(opts Options) *Server {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}
	s := &Server{
		addr:    opts.Addr,
		logger:  opts.Logger,
		timeout: 10 * time.Second,
	}
	s.router = newRouter(opts.Catalog, opts.Logger)
	return s
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.http = &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("starting server: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info().Msg("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	s.logger.Info().Msg("HTTP server stopped")
	return nil
}

func newRouter(catalog service.CatalogService, logger zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(logger), cors())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running!")
	})

	h := &handlers{catalog: catalog}
	api := router.Group("/api")
	{
		courses := api.Group("/courses")
		courses.GET("", h.listCourses)
		courses.GET("/:id", h.getCourse)

		api.GET("/progress", h.progress)
		api.GET("/eligibility", h.eligibility)
		api.GET("/menciones", h.menciones)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorBody("Not found"))
	})
	return router
}
