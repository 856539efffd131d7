package recording

import (
	"context"
	"fmt"

	"github.com/spacesedan/reviewsense/internal/models"
)

const (
	statsKeyPrefix = "reviewsense:stats:"
	statsTotalKey  = statsKeyPrefix + "total"
)

func statsKey(s models.Sentiment) string {
	return statsKeyPrefix + string(s)
}

// CounterStore is implemented by clients.ValkeyClient.
type CounterStore interface {
	Incr(ctx context.Context, keys ...string) error
	GetInts(ctx context.Context, keys ...string) ([]int64, error)
}

// Stats keeps running totals of verdicts per sentiment.
type Stats struct {
	store CounterStore
}

func NewStats(store CounterStore) *Stats {
	return &Stats{store: store}
}

func (s *Stats) Record(ctx context.Context, record models.AnalysisRecord) error {
	if !record.Verdict.Sentiment.Valid() {
		return fmt.Errorf("refusing to count sentiment %q", record.Verdict.Sentiment)
	}
	return s.store.Incr(ctx, statsTotalKey, statsKey(record.Verdict.Sentiment))
}

func (s *Stats) Snapshot(ctx context.Context) (models.AnalysisStats, error) {
	values, err := s.store.GetInts(ctx,
		statsTotalKey,
		statsKey(models.SentimentPositive),
		statsKey(models.SentimentNegative),
		statsKey(models.SentimentNeutral),
	)
	if err != nil {
		return models.AnalysisStats{}, fmt.Errorf("failed to read stats: %w", err)
	}
	if len(values) != 4 {
		return models.AnalysisStats{}, fmt.Errorf("expected 4 counters, got %d", len(values))
	}

	return models.AnalysisStats{
		Total:    values[0],
		Positive: values[1],
		Negative: values[2],
		Neutral:  values[3],
	}, nil
}
