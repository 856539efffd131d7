package sentiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/spacesedan/reviewsense/internal/models"
)

// Labeler returns the top label and its score for a piece of text.
type Labeler interface {
	Label(text string) (string, float64, error)
}

// Transformer classifies with a text-classification model. Word lists and
// counts come from the fixed lists, the label and confidence from the model.
type Transformer struct {
	labeler Labeler
}

func NewTransformer(labeler Labeler) *Transformer {
	return &Transformer{labeler: labeler}
}

func (t *Transformer) Name() string { return "onnx" }

func (t *Transformer) Classify(_ context.Context, review string) (models.Verdict, error) {
	label, score, err := t.labeler.Label(review)
	if err != nil {
		return models.Verdict{}, fmt.Errorf("transformer pipeline failed: %w", err)
	}

	sentiment, ok := sentimentFromLabel(label)
	if !ok {
		return models.Verdict{}, fmt.Errorf("transformer returned unknown label %q", label)
	}

	tally := CountWords(review)
	counts := tally.Counts()
	if score < 0 {
		score = 0
	} else if score > 1 {
		score = 1
	}

	return models.Verdict{
		Sentiment:  sentiment,
		Confidence: score,
		Explanation: fmt.Sprintf("The model labelled the review %s with a score of %.2f. The review contains %d positive and %d negative words.",
			sentiment, score, counts.Positive, counts.Negative),
		PositiveWords: tally.PositiveWords,
		NegativeWords: tally.NegativeWords,
		WordCounts:    counts,
	}, nil
}

// sentimentFromLabel understands the label sets of the common sentiment
// checkpoints: POSITIVE/NEGATIVE (sst-2), LABEL_0..2 (cardiffnlp) and
// "n stars" (nlptown).
func sentimentFromLabel(label string) (models.Sentiment, bool) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "POSITIVE", "POS", "LABEL_2", "4 STARS", "5 STARS":
		return models.SentimentPositive, true
	case "NEGATIVE", "NEG", "LABEL_0", "1 STAR", "2 STARS":
		return models.SentimentNegative, true
	case "NEUTRAL", "NEU", "LABEL_1", "3 STARS":
		return models.SentimentNeutral, true
	default:
		return "", false
	}
}

// HugotLabeler runs an ONNX text-classification pipeline through hugot.
type HugotLabeler struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

func NewHugotLabeler(modelPath string) (*HugotLabeler, error) {
	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hugot session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "reviewSentimentPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		_ = session.Destroy()
		return nil, fmt.Errorf("failed to initialize text classification pipeline: %w", err)
	}

	slog.Info("[Transformer] Pipeline ready", slog.String("model_path", modelPath))
	return &HugotLabeler{session: session, pipeline: pipeline}, nil
}

func (h *HugotLabeler) Label(text string) (string, float64, error) {
	output, err := h.pipeline.RunPipeline([]string{text})
	if err != nil {
		return "", 0, err
	}
	if len(output.ClassificationOutputs) == 0 || len(output.ClassificationOutputs[0]) == 0 {
		return "", 0, errors.New("pipeline returned no classification")
	}

	best := output.ClassificationOutputs[0][0]
	for _, candidate := range output.ClassificationOutputs[0][1:] {
		if candidate.Score > best.Score {
			best = candidate
		}
	}
	return best.Label, float64(best.Score), nil
}

func (h *HugotLabeler) Close() error {
	return h.session.Destroy()
}
