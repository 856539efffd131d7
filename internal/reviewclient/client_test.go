package reviewclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/spacesedan/reviewsense/internal/models"
	"github.com/spacesedan/reviewsense/internal/sentiment"
	"github.com/spacesedan/reviewsense/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyzeServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Analyze(t *testing.T) {
	var got models.AnalyzeRequest
	srv := newAnalyzeServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analyze", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(sentiment.NewRuleBased().Analyze(got.Review))
	})

	c := New(srv.URL+"/", time.Second)
	v, err := c.Analyze(context.Background(), "  This movie was amazing and wonderful \n")

	require.NoError(t, err)
	assert.Equal(t, "This movie was amazing and wonderful", got.Review)
	assert.Equal(t, models.SentimentPositive, v.Sentiment)
	assert.Equal(t, []string{"amazing", "wonderful"}, v.PositiveWords)
	assert.Equal(t, ui.Success, c.State())
}

func TestClient_BlankReviewSendsNothing(t *testing.T) {
	called := false
	srv := newAnalyzeServer(t, func(http.ResponseWriter, *http.Request) { called = true })

	c := New(srv.URL, time.Second)
	_, err := c.Analyze(context.Background(), " \t\n")

	assert.ErrorIs(t, err, ErrEmptyReview)
	assert.False(t, called)
	assert.Equal(t, ui.Idle, c.State())
}

func TestClient_NonOKIsFailure(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusInternalServerError, http.StatusBadGateway} {
		srv := newAnalyzeServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":"Failed to analyze sentiment"}`))
		})

		c := New(srv.URL, time.Second)
		_, err := c.Analyze(context.Background(), "good")

		assert.ErrorIs(t, err, ErrAnalyzeFailed)
		assert.Equal(t, ui.Failure, c.State())
	}
}

func TestClient_BadBodyIsFailure(t *testing.T) {
	srv := newAnalyzeServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := New(srv.URL, time.Second).Analyze(context.Background(), "good")
	assert.ErrorIs(t, err, ErrAnalyzeFailed)
}

func TestClient_RecoversAfterFailure(t *testing.T) {
	fail := true
	srv := newAnalyzeServer(t, func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		var req models.AnalyzeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(sentiment.NewRuleBased().Analyze(req.Review))
	})

	c := New(srv.URL, time.Second)
	_, err := c.Analyze(context.Background(), "boring")
	require.Error(t, err)

	fail = false
	v, err := c.Analyze(context.Background(), "boring")
	require.NoError(t, err)
	assert.Equal(t, models.SentimentNegative, v.Sentiment)
}

func TestClient_OneRequestInFlight(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	var once sync.Once
	srv := newAnalyzeServer(t, func(w http.ResponseWriter, _ *http.Request) {
		once.Do(func() { close(entered) })
		<-release
		_ = json.NewEncoder(w).Encode(sentiment.NewRuleBased().Analyze("good"))
	})

	c := New(srv.URL, 5*time.Second)
	done := make(chan error, 1)
	go func() {
		_, err := c.Analyze(context.Background(), "good")
		done <- err
	}()

	<-entered
	assert.Equal(t, ui.Submitting, c.State())
	_, err := c.Analyze(context.Background(), "another")
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, ui.Success, c.State())
}
