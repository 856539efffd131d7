package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spacesedan/reviewsense/internal/metrics"
	"github.com/spacesedan/reviewsense/internal/models"
	"github.com/spacesedan/reviewsense/internal/ui"
)

type analyzer interface {
	Analyze(ctx context.Context, review string) (models.Verdict, error)
	ClassifierName() string
}

type statsReader interface {
	Snapshot(ctx context.Context) (models.AnalysisStats, error)
}

type Server struct {
	echo *echo.Echo
	port string

	analyzer analyzer
	stats    statsReader

	registry     *prometheus.Registry
	httpMetrics  *metrics.HTTPMetrics
	healthChecks []HealthCheck
	startTime    time.Time
}

type Option func(*Server)

// WithStats exposes GET /api/stats backed by stats.
func WithStats(stats statsReader) Option {
	return func(s *Server) { s.stats = stats }
}

func WithHealthChecks(checks ...HealthCheck) Option {
	return func(s *Server) { s.healthChecks = append(s.healthChecks, checks...) }
}

// WithMetrics serves reg on /metrics and records HTTP metrics into it.
func WithMetrics(reg *prometheus.Registry, httpMetrics *metrics.HTTPMetrics) Option {
	return func(s *Server) {
		s.registry = reg
		s.httpMetrics = httpMetrics
	}
}

func NewServer(port string, svc analyzer, opts ...Option) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:      e,
		port:      port,
		analyzer:  svc,
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(srv)
	}

	e.HTTPErrorHandler = srv.handleError
	srv.registerRoutes()

	return srv
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start() error {
	slog.Info("[Server] Starting server",
		slog.String("port", s.port),
		slog.String("classifier", s.analyzer.ClassifierName()))
	if err := s.echo.Start(":" + s.port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

func (s *Server) renderPage(c echo.Context, view ui.View) error {
	var buf bytes.Buffer
	if err := ui.Render(&buf, view); err != nil {
		slog.Error("[Server] Template execution failed",
			slog.String("path", c.Request().URL.Path),
			slog.String("error", err.Error()))
		return c.String(http.StatusInternalServerError, "Failed to render page")
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
