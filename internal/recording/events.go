package recording

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spacesedan/reviewsense/internal/models"
)

// Publisher is implemented by clients.KafkaProducer.
type Publisher interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
}

// Events publishes every analysis as JSON, keyed by the analysis id.
type Events struct {
	publisher Publisher
	topic     string
}

func NewEvents(publisher Publisher, topic string) *Events {
	return &Events{publisher: publisher, topic: topic}
}

func (e *Events) Record(ctx context.Context, record models.AnalysisRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis event: %w", err)
	}
	return e.publisher.Publish(ctx, e.topic, []byte(record.ID), payload)
}
