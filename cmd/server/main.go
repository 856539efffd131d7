package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/reviewsense/config"
	"github.com/spacesedan/reviewsense/internal/analysis"
	"github.com/spacesedan/reviewsense/internal/logging"
	"github.com/spacesedan/reviewsense/internal/metrics"
	"github.com/spacesedan/reviewsense/internal/server"
)

func setupConfig() config.Settings {
	config.LoadEnv(config.AppEnv())
	settings, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return settings
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("[Main] Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("[Main] Server shutdown error", slog.String("error", err.Error()))
		}

		close(done)
	}()

	return done
}

// newClassifier is swapped in tests.
var newClassifier = analysis.NewClassifier

// run owns every resource it opens, so they are released on both the error and
// the shutdown path before main exits.
func run(settings config.Settings) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	classifier, closeClassifier, err := newClassifier(ctx, settings)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to initialize classifier: %w", err)
	}
	defer closeClassifier()

	sinks, err := analysis.NewSinks(ctx, settings)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to initialize recorders: %w", err)
	}
	defer sinks.Close()

	reg := metrics.NewRegistry()
	svc := analysis.NewService(classifier,
		analysis.WithRecorder(sinks.Recorder),
		analysis.WithMetrics(metrics.NewAnalysisMetrics(reg)),
		analysis.WithRecordTimeout(settings.RecordTimeout))

	opts := []server.Option{server.WithMetrics(reg, metrics.NewHTTPMetrics(reg))}
	for _, check := range sinks.Checks {
		opts = append(opts, server.WithHealthChecks(server.HealthCheck{Name: check.Name, Check: check.Ping}))
	}
	if sinks.Stats != nil {
		opts = append(opts, server.WithStats(sinks.Stats))
	}

	srv := server.NewServer(settings.Port, svc, opts...)
	done := runGracefulShutdown(srv)

	if err := srv.Start(); err != nil {
		return err
	}

	<-done
	return nil
}

func main() {
	settings := setupConfig()
	logging.InitLogger(settings.LogLevel)
	slog.Info("[Main] Application starting",
		slog.String("env", settings.AppEnv),
		slog.String("port", settings.Port))

	if err := run(settings); err != nil {
		slog.Error("[Main] Server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("[Main] Server stopped")
}
