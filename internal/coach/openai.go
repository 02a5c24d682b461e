package coach

import (
	"context"
	"log/slog"
	"time"

	"github.com/hyperengineering/stride/internal/config"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Compile-time interface check
var _ Generator = (*Client)(nil)

// ChatService defines the interface for making chat-completion API calls.
// This abstraction enables testing without calling the real provider.
type ChatService interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// Client implements Generator against an OpenAI-compatible chat-completion
// endpoint (OpenRouter by default).
type Client struct {
	chat        ChatService
	model       string
	temperature float64
	maxTokens   int
	timeout     time.Duration
	configured  bool
}

// NewClient creates a chat-completion-backed Generator from config.
// An empty API key yields a client that always serves the fallback plan;
// configuration failure is degraded behavior, not a startup error.
func NewClient(cfg config.AIConfig) *Client {
	c := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
	)
	return &Client{
		chat:        c.Chat.Completions,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     time.Duration(cfg.RequestTimeout),
		configured:  cfg.APIKey != "",
	}
}

// ModelName returns the configured chat model identifier.
func (c *Client) ModelName() string {
	return c.model
}

// GenerateDailyPlan builds the prompt, calls the model within a bounded
// timeout, and decodes the result. Every failure path returns the fallback
// plan; this method never fails from the caller's perspective.
func (c *Client) GenerateDailyPlan(ctx context.Context, input PlanInput) *DayPlan {
	if !c.configured {
		slog.Warn("ai credential missing, serving fallback plan", "user_id", input.UserID)
		return FallbackPlan()
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := buildPrompt(input.Journals, input.Goals, time.Now().UTC())

	resp, err := c.chat.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.F(openai.ChatModel(c.model)),
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		}),
		Temperature: openai.F(c.temperature),
		MaxTokens:   openai.F(int64(c.maxTokens)),
	})
	if err != nil {
		slog.Error("chat completion failed, serving fallback plan",
			"user_id", input.UserID,
			"error", err,
		)
		return FallbackPlan()
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		slog.Warn("chat completion returned no content, serving fallback plan", "user_id", input.UserID)
		return FallbackPlan()
	}

	plan, err := decodePlan(resp.Choices[0].Message.Content)
	if err != nil {
		slog.Warn("discarding malformed model output, serving fallback plan",
			"user_id", input.UserID,
			"error", err,
		)
		return FallbackPlan()
	}

	plan.sanitize(input.Goals)
	return plan
}
