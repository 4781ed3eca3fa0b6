// Package llm is the boundary to the language model. Everything behind the
// Client interface is treated as a black-box text generator with one failure
// mode: an error (timeout, API failure, unparseable output) means the caller
// takes its degrade path. Nothing in here retries.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/warehouse-exchange/wex/pkg/config"
)

// Request is one completion call.
type Request struct {
	// System is the system prompt; empty means none.
	System string

	// Prompt is the user message.
	Prompt string

	// MaxTokens overrides the configured cap when > 0.
	MaxTokens int

	// Temperature overrides the configured value when >= 0. Scoring and
	// planning calls pass 0 so identical inputs produce identical outputs as
	// far as the provider allows.
	Temperature float64
}

// Client generates text. Implementations must honor ctx cancellation; a
// per-step timeout is always set by the caller.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// AnthropicClient implements Client over the Anthropic Messages API.
type AnthropicClient struct {
	messages *sdk.MessageService
	cfg      *config.LLMConfig
}

// NewAnthropicClient builds the production client from configuration. The API
// key is read from the environment variable named in the config.
func NewAnthropicClient(cfg *config.LLMConfig) (*AnthropicClient, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("missing API key: environment variable %s is not set", cfg.APIKeyEnv)
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	ac := sdk.NewClient(opts...)

	slog.Info("LLM client initialized", "model", cfg.Model)

	return &AnthropicClient{
		messages: &ac.Messages,
		cfg:      cfg,
	}, nil
}

// Complete issues one non-streaming Messages call and returns the
// concatenated text blocks.
func (c *AnthropicClient) Complete(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.cfg.MaxTokens
	}
	temperature := req.Temperature
	if temperature < 0 {
		temperature = c.cfg.Temperature
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(c.cfg.Model),
		MaxTokens: int64(maxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt)),
		},
		Temperature: sdk.Float(temperature),
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}

	start := time.Now()
	msg, err := c.messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("llm completion failed: %w", err)
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("llm returned no text content")
	}

	slog.Debug("LLM completion",
		"model", c.cfg.Model,
		"elapsed", time.Since(start),
		"output_chars", len(text))

	return text, nil
}
