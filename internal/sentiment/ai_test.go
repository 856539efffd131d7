package sentiment

import (
	"context"
	"errors"
	"testing"

	"github.com/spacesedan/reviewsense/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockGenerator struct {
	generateFn func(ctx context.Context, prompt string) (string, error)
}

func (m *mockGenerator) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return m.generateFn(ctx, prompt)
}

func (m *mockGenerator) Name() string { return "mock" }

func TestAIClassifier_Success(t *testing.T) {
	var gotPrompt string
	gen := &mockGenerator{generateFn: func(_ context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return validResponse, nil
	}}

	v, err := NewAIClassifier(gen).Classify(context.Background(), "Great, another two hours I will never get back")
	require.NoError(t, err)

	assert.Equal(t, models.SentimentNegative, v.Sentiment)
	assert.Equal(t, 0.92, v.Confidence)
	assert.Contains(t, gotPrompt, `Review: "Great, another two hours I will never get back"`)
	assert.Contains(t, gotPrompt, `"not good" is negative`)
}

func TestAIClassifier_TransportError(t *testing.T) {
	cause := errors.New("connection reset")
	gen := &mockGenerator{generateFn: func(context.Context, string) (string, error) {
		return "", cause
	}}

	_, err := NewAIClassifier(gen).Classify(context.Background(), "fine")
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "mock", transportErr.Provider)
	assert.ErrorIs(t, err, cause)

	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))
}

func TestAIClassifier_ValidationError(t *testing.T) {
	gen := &mockGenerator{generateFn: func(context.Context, string) (string, error) {
		return `{"sentiment":"ecstatic","confidence":2}`, nil
	}}

	_, err := NewAIClassifier(gen).Classify(context.Background(), "fine")
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, `{"sentiment":"ecstatic","confidence":2}`, validationErr.Raw)
	assert.NotEmpty(t, validationErr.Problems)
	assert.Contains(t, err.Error(), "mock: invalid verdict")

	var transportErr *TransportError
	assert.False(t, errors.As(err, &transportErr))
}

func TestAIClassifier_Name(t *testing.T) {
	assert.Equal(t, "mock", NewAIClassifier(&mockGenerator{}).Name())
}

func TestBuildPrompt_EscapesReview(t *testing.T) {
	prompt := BuildPrompt("She said \"wow\"\nthen left")
	assert.Contains(t, prompt, `Review: "She said \"wow\"\nthen left"`)
}
