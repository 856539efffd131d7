// Package sentiment classifies movie reviews. Every strategy implements
// Classifier and is picked once at startup.
package sentiment

import (
	"context"

	"github.com/spacesedan/reviewsense/internal/models"
)

type Classifier interface {
	Classify(ctx context.Context, review string) (models.Verdict, error)
	// Name identifies the strategy in logs, metrics and analysis records.
	Name() string
}
