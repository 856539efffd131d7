package server

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spacesedan/reviewsense/internal/ui"
)

func (s *Server) registerPageRoutes() {
	s.echo.GET("/", s.handlePage)
	s.echo.POST("/", s.handlePageSubmit)
}

func (s *Server) handlePage(c echo.Context) error {
	return s.renderPage(c, ui.View{State: ui.Idle})
}

// handlePageSubmit is the form fallback for the page: it runs one analysis and
// renders the outcome. A blank review leaves the page idle.
func (s *Server) handlePageSubmit(c echo.Context) error {
	review := strings.TrimSpace(c.FormValue("review"))

	state, err := ui.Transition(ui.Idle, ui.Submit, review)
	if err != nil {
		return s.renderPage(c, ui.View{State: ui.Idle, Review: review})
	}

	verdict, err := s.analyzer.Analyze(c.Request().Context(), review)
	if err != nil {
		slog.Error("[Server] Analysis failed",
			slog.String("classifier", s.analyzer.ClassifierName()),
			slog.String("error", err.Error()))
		state, _ = ui.Transition(state, ui.Fail, review)
		return s.renderPage(c, ui.View{State: state, Review: review, Error: ui.MsgTryAgain})
	}

	state, _ = ui.Transition(state, ui.Succeed, review)
	return s.renderPage(c, ui.View{State: state, Review: review, Verdict: &verdict})
}
