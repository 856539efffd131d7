package analysis

import (
	"encoding/json"
	"errors"

	"github.com/spacesedan/reviewsense/internal/models"
)

var ErrReviewRequired = errors.New(models.MsgReviewRequired)

// DecodeReview pulls the review out of an analyze request body. The body has
// to be a JSON object whose review field is a non-empty string; surrounding
// whitespace is left alone.
func DecodeReview(body []byte) (string, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		return "", ErrReviewRequired
	}

	raw, ok := payload["review"]
	if !ok {
		return "", ErrReviewRequired
	}

	var review string
	if err := json.Unmarshal(raw, &review); err != nil || review == "" {
		return "", ErrReviewRequired
	}
	return review, nil
}
