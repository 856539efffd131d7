package sentiment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spacesedan/reviewsense/internal/models"
)

// Generator sends a prompt to a language model that was asked for a JSON
// object and returns the raw text of the answer.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	Name() string
}

// AIClassifier delegates classification to a language model and checks the
// answer against the verdict shape before returning it.
type AIClassifier struct {
	generator Generator
}

func NewAIClassifier(generator Generator) *AIClassifier {
	return &AIClassifier{generator: generator}
}

func (c *AIClassifier) Name() string { return c.generator.Name() }

func (c *AIClassifier) Classify(ctx context.Context, review string) (models.Verdict, error) {
	raw, err := c.generator.GenerateJSON(ctx, BuildPrompt(review))
	if err != nil {
		return models.Verdict{}, &TransportError{Provider: c.generator.Name(), Err: err}
	}

	verdict, problems := ParseVerdict(raw)
	if len(problems) > 0 {
		slog.Debug("[AIClassifier] Rejected model response",
			slog.String("provider", c.generator.Name()),
			slog.String("raw_response", raw))
		return models.Verdict{}, &ValidationError{Provider: c.generator.Name(), Problems: problems, Raw: raw}
	}
	return verdict, nil
}

func BuildPrompt(review string) string {
	return fmt.Sprintf(`Analyze the sentiment of this movie review and provide detailed insights:

Review: %q

Please analyze this review and provide:
1. Overall sentiment (positive, negative, or neutral)
2. Confidence score (0-1) based on how clear the sentiment is
3. A clear explanation of why this sentiment was determined
4. Lists of positive and negative words found in the review
5. Word counts for positive, negative, and neutral words

Consider context, sarcasm, and nuanced language. Remember that "not good" is negative, etc.

Respond only with a JSON object of this shape:
{
  "sentiment": "positive" | "negative" | "neutral",
  "confidence": number between 0 and 1,
  "explanation": string,
  "positiveWords": [string],
  "negativeWords": [string],
  "wordCounts": {"positive": integer, "negative": integer, "neutral": integer}
}`, review)
}
