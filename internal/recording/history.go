package recording

import (
	"context"

	"github.com/spacesedan/reviewsense/internal/models"
)

type historyStore interface {
	Store(ctx context.Context, record models.AnalysisRecord) error
}

// History writes every analysis to the history table.
type History struct {
	store historyStore
}

func NewHistory(store historyStore) *History {
	return &History{store: store}
}

func (h *History) Record(ctx context.Context, record models.AnalysisRecord) error {
	return h.store.Store(ctx, record)
}
