package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spacesedan/reviewsense/config"
	"github.com/spacesedan/reviewsense/internal/analysis"
	"github.com/spacesedan/reviewsense/internal/logging"
)

// setup runs once per cold start; the clients it builds are reused across
// invocations. The classifier cleanup and the recorder connections are never
// released: they live exactly as long as the Lambda execution environment,
// which is frozen and torn down without notice.
func setup() *handler {
	config.LoadEnv(config.AppEnv())
	settings, err := config.Load()
	if err != nil {
		slog.Error("[Lambda] Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logging.InitLogger(settings.LogLevel)
	slog.Info("[Lambda] Cold start", slog.String("env", settings.AppEnv))

	ctx := context.Background()
	classifier, _, err := analysis.NewClassifier(ctx, settings) // held for the process lifetime
	if err != nil {
		slog.Error("[Lambda] Failed to initialize classifier", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sinks, err := analysis.NewSinks(ctx, settings)
	if err != nil {
		slog.Error("[Lambda] Failed to initialize recorders", slog.String("error", err.Error()))
		os.Exit(1)
	}

	return newHandler(analysis.NewService(classifier,
		analysis.WithRecorder(sinks.Recorder),
		analysis.WithRecordTimeout(settings.RecordTimeout)))
}

func main() {
	lambda.Start(setup().Handle)
}
