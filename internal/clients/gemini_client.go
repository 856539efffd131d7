package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// BaseURL overrides the Gemini API endpoint. Empty uses the default.
	BaseURL string
}

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("[GeminiClient] failed to create client: %w", err)
	}

	slog.Info("[GeminiClient] Gemini client initialized",
		slog.String("model", cfg.Model),
		slog.Duration("timeout", cfg.Timeout))

	return &GeminiClient{client: client, model: cfg.Model}, nil
}

func (c *GeminiClient) Name() string { return "gemini" }

func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   VerdictSchema(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content with Gemini: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no response candidates from Gemini")
	}

	var result strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			result.WriteString(part.Text)
		}
	}
	return result.String(), nil
}

// VerdictSchema is the response schema Gemini is constrained to.
func VerdictSchema() *genai.Schema {
	minConfidence, maxConfidence := 0.0, 1.0
	words := &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"sentiment": {
				Type: genai.TypeString,
				Enum: []string{"positive", "negative", "neutral"},
			},
			"confidence": {
				Type:    genai.TypeNumber,
				Minimum: &minConfidence,
				Maximum: &maxConfidence,
			},
			"explanation":   {Type: genai.TypeString},
			"positiveWords": words,
			"negativeWords": words,
			"wordCounts": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"positive": {Type: genai.TypeInteger},
					"negative": {Type: genai.TypeInteger},
					"neutral":  {Type: genai.TypeInteger},
				},
				Required: []string{"positive", "negative", "neutral"},
			},
		},
		Required: []string{"sentiment", "confidence", "explanation", "positiveWords", "negativeWords", "wordCounts"},
	}
}
