package clients

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const openAISystemPrompt = "You classify the sentiment of movie reviews. Reply with a single JSON object and nothing else."

type OpenAIConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// BaseURL overrides the API endpoint, e.g. for a proxy or a test server.
	BaseURL string
}

type OpenAIClient struct {
	Client *openai.Client
	model  string
}

func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	config := openai.DefaultConfig(cfg.APIKey)
	config.HTTPClient = &http.Client{
		Timeout: cfg.Timeout,
	}
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	slog.Info("[OpenAIClient] OpenAI client initialized with custom HTTP timeout",
		slog.String("model", cfg.Model),
		slog.Duration("timeout", cfg.Timeout))

	return &OpenAIClient{
		Client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
	}
}

func (c *OpenAIClient) Name() string { return "openai" }

func (c *OpenAIClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openAISystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	slog.Debug("[OpenAIClient] Completion finished",
		slog.String("finish_reason", string(resp.Choices[0].FinishReason)),
		slog.Duration("elapsed", time.Since(start)))

	return resp.Choices[0].Message.Content, nil
}
