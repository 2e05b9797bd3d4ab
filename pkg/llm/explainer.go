package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/noperator/ncx/pkg/logging"
)

// ErrMissingAPIKey reports that no credential is configured. It is returned
// before any network call is made.
var ErrMissingAPIKey = errors.New("missing API key (set OPENAI_API_KEY environment variable)")

// Client requests plain-language explanations of netcat runs from an
// OpenAI-compatible chat completion API.
type Client struct {
	client openai.Client
	config Config
	logger *slog.Logger
}

// NewClient creates a new explanation client. Retries are disabled; each
// request is a single attempt bounded by the configured timeout.
func NewClient(config Config) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithMaxRetries(0),
	}

	if config.BaseURL != "" {
		baseURL := config.BaseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(config.Timeout))
	}

	client := openai.NewClient(opts...)

	return &Client{
		client: client,
		config: config,
		logger: logging.NewLoggerFromEnv(),
	}
}

// Explain sends one completion request for the given run and returns the
// model's text. It fails with ErrMissingAPIKey when no credential is
// configured, without contacting the API.
func (c *Client) Explain(ctx context.Context, req Request) (string, error) {
	if c.config.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	prompt, err := RenderUserPrompt(req)
	if err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}

	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(c.config.Model),
		Temperature: openai.Float(c.config.Temperature),
	}

	if c.config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(c.config.MaxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("OpenAI API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned from LLM")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("LLM returned empty content (finish reason: %v, model: %s, response ID: %s)",
			resp.Choices[0].FinishReason, resp.Model, resp.ID)
	}

	c.logger.Debug("token usage",
		"component", "explainer",
		"model", resp.Model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"total_tokens", resp.Usage.TotalTokens)

	return content, nil
}
