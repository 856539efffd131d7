package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spacesedan/reviewsense/internal/models"
	"github.com/spacesedan/reviewsense/internal/sentiment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runReview(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		serverURL, local, jsonOutput = "http://localhost:8080", false, false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAnalyze_Local(t *testing.T) {
	out, err := runReview(t, "", "analyze", "--local", "This movie was amazing and wonderful")

	require.NoError(t, err)
	assert.Contains(t, out, "positive")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "amazing, wonderful")
	assert.Contains(t, out, "The review contains more positive words (2) than negative words (0).")
}

func TestAnalyze_LocalJSONFromStdin(t *testing.T) {
	out, err := runReview(t, "The plot was boring and the acting was terrible\n", "analyze", "--local", "--json")
	require.NoError(t, err)

	var v models.Verdict
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, models.SentimentNegative, v.Sentiment)
	assert.Equal(t, models.WordCounts{Positive: 0, Negative: 2, Neutral: 7}, v.WordCounts)
}

func TestAnalyze_LocalBlank(t *testing.T) {
	_, err := runReview(t, "", "analyze", "--local", "   ")
	assert.Error(t, err)
}

func TestAnalyze_Server(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.AnalyzeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(sentiment.NewRuleBased().Analyze(req.Review))
	}))
	defer srv.Close()

	out, err := runReview(t, "", "analyze", "--server", srv.URL, "--json", "It was okay, nothing special")
	require.NoError(t, err)

	var v models.Verdict
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, models.SentimentNeutral, v.Sentiment)
}

func TestAnalyze_ServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := runReview(t, "", "analyze", "--server", srv.URL, "great")
	assert.ErrorContains(t, err, "Failed to analyze sentiment. Please try again.")
}
