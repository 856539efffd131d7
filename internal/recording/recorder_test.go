package recording

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/spacesedan/reviewsense/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorderFunc func(ctx context.Context, record models.AnalysisRecord) error

func (f recorderFunc) Record(ctx context.Context, record models.AnalysisRecord) error {
	return f(ctx, record)
}

type mockCounters struct {
	counts map[string]int64
	err    error
}

func newMockCounters() *mockCounters {
	return &mockCounters{counts: map[string]int64{}}
}

func (m *mockCounters) Incr(_ context.Context, keys ...string) error {
	if m.err != nil {
		return m.err
	}
	for _, k := range keys {
		m.counts[k]++
	}
	return nil
}

func (m *mockCounters) GetInts(_ context.Context, keys ...string) ([]int64, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]int64, len(keys))
	for i, k := range keys {
		out[i] = m.counts[k]
	}
	return out, nil
}

type mockPublisher struct {
	topic string
	key   []byte
	value []byte
	err   error
}

func (m *mockPublisher) Publish(_ context.Context, topic string, key, value []byte) error {
	m.topic, m.key, m.value = topic, key, value
	return m.err
}

func record(s models.Sentiment) models.AnalysisRecord {
	return models.AnalysisRecord{
		ID:         "a1",
		Classifier: "rules",
		Review:     "review",
		Verdict: models.Verdict{
			Sentiment:     s,
			Confidence:    0.5,
			PositiveWords: []string{},
			NegativeWords: []string{},
		},
		CreatedAt: time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC),
	}
}

func TestMulti_FansOutAndJoinsErrors(t *testing.T) {
	var calls []string
	m := NewMulti()
	m.Add("history", recorderFunc(func(context.Context, models.AnalysisRecord) error {
		calls = append(calls, "history")
		return errors.New("table missing")
	}))
	m.Add("stats", recorderFunc(func(context.Context, models.AnalysisRecord) error {
		calls = append(calls, "stats")
		return nil
	}))
	m.Add("events", recorderFunc(func(context.Context, models.AnalysisRecord) error {
		calls = append(calls, "events")
		return errors.New("broker down")
	}))

	err := m.Record(context.Background(), record(models.SentimentPositive))

	assert.Equal(t, []string{"history", "stats", "events"}, calls)
	assert.Equal(t, 3, m.Len())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history: table missing")
	assert.Contains(t, err.Error(), "events: broker down")
	assert.NotContains(t, err.Error(), "stats")
}

func TestMulti_Empty(t *testing.T) {
	assert.NoError(t, NewMulti().Record(context.Background(), record(models.SentimentNeutral)))
	assert.NoError(t, Nop{}.Record(context.Background(), record(models.SentimentNeutral)))
}

func TestStats_RecordAndSnapshot(t *testing.T) {
	counters := newMockCounters()
	stats := NewStats(counters)
	ctx := context.Background()

	require.NoError(t, stats.Record(ctx, record(models.SentimentPositive)))
	require.NoError(t, stats.Record(ctx, record(models.SentimentPositive)))
	require.NoError(t, stats.Record(ctx, record(models.SentimentNeutral)))

	snap, err := stats.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AnalysisStats{Total: 3, Positive: 2, Negative: 0, Neutral: 1}, snap)
	assert.Equal(t, int64(3), counters.counts["reviewsense:stats:total"])
}

func TestStats_RejectsUnknownSentiment(t *testing.T) {
	counters := newMockCounters()
	err := NewStats(counters).Record(context.Background(), record("mixed"))

	assert.Error(t, err)
	assert.Empty(t, counters.counts)
}

func TestStats_StoreErrors(t *testing.T) {
	counters := newMockCounters()
	counters.err = errors.New("connection refused")
	stats := NewStats(counters)

	assert.ErrorContains(t, stats.Record(context.Background(), record(models.SentimentNegative)), "connection refused")

	_, err := stats.Snapshot(context.Background())
	assert.ErrorContains(t, err, "connection refused")
}

func TestEvents_Record(t *testing.T) {
	pub := &mockPublisher{}
	rec := record(models.SentimentNegative)

	require.NoError(t, NewEvents(pub, "review-analyses").Record(context.Background(), rec))

	assert.Equal(t, "review-analyses", pub.topic)
	assert.Equal(t, []byte("a1"), pub.key)

	var decoded models.AnalysisRecord
	require.NoError(t, json.Unmarshal(pub.value, &decoded))
	assert.Equal(t, rec, decoded)
}

func TestEvents_PublishError(t *testing.T) {
	pub := &mockPublisher{err: errors.New("delivery failed")}
	err := NewEvents(pub, "review-analyses").Record(context.Background(), record(models.SentimentNegative))
	assert.ErrorContains(t, err, "delivery failed")
}

type mockHistoryStore struct {
	stored []models.AnalysisRecord
}

func (m *mockHistoryStore) Store(_ context.Context, rec models.AnalysisRecord) error {
	m.stored = append(m.stored, rec)
	return nil
}

func TestHistory_Record(t *testing.T) {
	store := &mockHistoryStore{}
	require.NoError(t, NewHistory(store).Record(context.Background(), record(models.SentimentPositive)))
	assert.Len(t, store.stored, 1)
}
