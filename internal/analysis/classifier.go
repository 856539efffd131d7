package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spacesedan/reviewsense/config"
	"github.com/spacesedan/reviewsense/internal/clients"
	"github.com/spacesedan/reviewsense/internal/sentiment"
)

// NewClassifier builds the strategy selected by settings. The returned cleanup
// releases anything the classifier holds on to and is never nil.
func NewClassifier(ctx context.Context, settings config.Settings) (sentiment.Classifier, func(), error) {
	noop := func() {}

	name := settings.ResolvedClassifier()
	slog.Info("[Analysis] Initializing classifier", slog.String("classifier", name))

	switch name {
	case config.ClassifierRules:
		return sentiment.NewRuleBased(), noop, nil

	case config.ClassifierVader:
		return sentiment.NewVader(), noop, nil

	case config.ClassifierONNX:
		labeler, err := sentiment.NewHugotLabeler(settings.ONNXModelPath)
		if err != nil {
			return nil, noop, err
		}
		cleanup := func() {
			if err := labeler.Close(); err != nil {
				slog.Warn("[Analysis] Failed to close ONNX session", slog.String("error", err.Error()))
			}
		}
		return sentiment.NewTransformer(labeler), cleanup, nil

	case config.ClassifierGemini:
		gemini, err := clients.NewGeminiClient(ctx, clients.GeminiConfig{
			APIKey:  settings.GoogleAPIKey,
			Model:   settings.GeminiModel,
			Timeout: settings.AIRequestTimeout,
		})
		if err != nil {
			return nil, noop, err
		}
		return sentiment.NewAIClassifier(gemini), noop, nil

	case config.ClassifierOpenAI:
		openai := clients.NewOpenAIClient(clients.OpenAIConfig{
			APIKey:  settings.OpenAIAPIKey,
			Model:   settings.OpenAIModel,
			Timeout: settings.AIRequestTimeout,
		})
		return sentiment.NewAIClassifier(openai), noop, nil
	}

	return nil, noop, fmt.Errorf("unknown classifier %q", name)
}
