package server

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spacesedan/reviewsense/internal/analysis"
	"github.com/spacesedan/reviewsense/internal/models"
)

func (s *Server) registerAPIRoutes() {
	s.echo.POST("/api/analyze", s.handleAnalyze)
	if s.stats != nil {
		s.echo.GET("/api/stats", s.handleStats)
	}
}

func (s *Server) handleAnalyze(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: models.MsgReviewRequired})
	}

	review, err := analysis.DecodeReview(body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	}

	verdict, err := s.analyzer.Analyze(c.Request().Context(), review)
	if err != nil {
		slog.Error("[Server] Analysis failed",
			slog.String("classifier", s.analyzer.ClassifierName()),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: models.MsgAnalyzeFailed})
	}

	return c.JSON(http.StatusOK, verdict)
}

func (s *Server) handleStats(c echo.Context) error {
	stats, err := s.stats.Snapshot(c.Request().Context())
	if err != nil {
		slog.Error("[Server] Failed to read stats", slog.String("error", err.Error()))
		return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "Stats are unavailable"})
	}
	return c.JSON(http.StatusOK, stats)
}
