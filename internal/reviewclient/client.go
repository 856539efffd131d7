// Package reviewclient talks to a running reviewsense server the same way the
// review page does.
package reviewclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/spacesedan/reviewsense/internal/models"
	"github.com/spacesedan/reviewsense/internal/ui"
)

var (
	ErrEmptyReview   = errors.New("review text is empty")
	ErrAnalyzeFailed = errors.New(ui.MsgTryAgain)
	ErrBusy          = errors.New("an analysis is already in flight")
)

const analyzePath = "/api/analyze"

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.Mutex
	state ui.State
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		state:      ui.Idle,
	}
}

// State reports where the client is in the submit cycle.
func (c *Client) State() ui.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Analyze trims text and posts it. A previous result is reset first, and a
// second call while one is outstanding gets ErrBusy.
func (c *Client) Analyze(ctx context.Context, text string) (models.Verdict, error) {
	review := strings.TrimSpace(text)
	if err := c.begin(review); err != nil {
		return models.Verdict{}, err
	}

	verdict, err := c.post(ctx, review)
	if err != nil {
		slog.Debug("[ReviewClient] Analyze failed", slog.String("error", err.Error()))
		c.finish(ui.Fail)
		return models.Verdict{}, fmt.Errorf("%w: %w", ErrAnalyzeFailed, err)
	}

	c.finish(ui.Succeed)
	return verdict, nil
}

func (c *Client) begin(review string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == ui.Success || c.state == ui.Failure {
		c.state, _ = ui.Transition(c.state, ui.Reset, "")
	}

	next, err := ui.Transition(c.state, ui.Submit, review)
	switch {
	case errors.Is(err, ui.ErrBlankReview):
		return ErrEmptyReview
	case err != nil:
		return ErrBusy
	}
	c.state = next
	return nil
}

func (c *Client) finish(event ui.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state, _ = ui.Transition(c.state, event, "")
}

func (c *Client) post(ctx context.Context, review string) (models.Verdict, error) {
	body, err := json.Marshal(models.AnalyzeRequest{Review: review})
	if err != nil {
		return models.Verdict{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analyzePath, bytes.NewReader(body))
	if err != nil {
		return models.Verdict{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Verdict{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return models.Verdict{}, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var verdict models.Verdict
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return models.Verdict{}, fmt.Errorf("failed to decode verdict: %w", err)
	}
	return verdict, nil
}
