package sentiment

import (
	"context"
	"errors"
	"testing"

	"github.com/spacesedan/reviewsense/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLabeler struct {
	label string
	score float64
	err   error
}

func (m mockLabeler) Label(string) (string, float64, error) {
	return m.label, m.score, m.err
}

func TestTransformer_Classify(t *testing.T) {
	tr := NewTransformer(mockLabeler{label: "NEGATIVE", score: 0.97})

	v, err := tr.Classify(context.Background(), "Great, just great. Two hours of my life gone.")
	require.NoError(t, err)

	assert.Equal(t, models.SentimentNegative, v.Sentiment)
	assert.InDelta(t, 0.97, v.Confidence, 1e-9)
	assert.Equal(t, []string{"great", "great"}, v.PositiveWords)
	assert.Equal(t, 2, v.WordCounts.Positive)
	assert.Empty(t, Validate(v))
}

func TestTransformer_Errors(t *testing.T) {
	_, err := NewTransformer(mockLabeler{err: errors.New("ort failure")}).Classify(context.Background(), "x")
	assert.ErrorContains(t, err, "ort failure")

	_, err = NewTransformer(mockLabeler{label: "SARCASM", score: 0.9}).Classify(context.Background(), "x")
	assert.ErrorContains(t, err, `unknown label "SARCASM"`)
}

func TestSentimentFromLabel(t *testing.T) {
	tests := map[string]models.Sentiment{
		"POSITIVE": models.SentimentPositive,
		"label_2":  models.SentimentPositive,
		"5 stars":  models.SentimentPositive,
		"Negative": models.SentimentNegative,
		"LABEL_0":  models.SentimentNegative,
		"1 star":   models.SentimentNegative,
		"neutral":  models.SentimentNeutral,
		"LABEL_1":  models.SentimentNeutral,
		"3 stars":  models.SentimentNeutral,
	}
	for label, want := range tests {
		got, ok := sentimentFromLabel(label)
		assert.True(t, ok, label)
		assert.Equal(t, want, got, label)
	}
}

func TestTransformer_ClampsScore(t *testing.T) {
	v, err := NewTransformer(mockLabeler{label: "POSITIVE", score: 1.2}).Classify(context.Background(), "ok")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.Confidence)
}
