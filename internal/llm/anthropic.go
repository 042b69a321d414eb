package llm

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/transcriptions-ai/transcriber/internal/config"
	"github.com/transcriptions-ai/transcriber/internal/domain"
	"github.com/transcriptions-ai/transcriber/pkg/util"
)

// anthropicExampleShape is shown to the model in generation prompts because
// the messages API has no JSON output mode.
const anthropicExampleShape = `{"tickets": [{"Subject": "Create a new feature", "Body": "Create a new feature that allows users to upload images", "EstimationPoints": 5}, {"Subject": "Update the homepage", "Body": "Update the homepage to include a new banner", "EstimationPoints": 3}]}`

// AnthropicClient invokes the messages API with a single user turn.
type AnthropicClient struct {
	api       anthropic.Client
	model     string
	maxTokens int
	logger    *zap.Logger
}

// NewAnthropicClient builds a client from provider configuration.
func NewAnthropicClient(cfg config.LLMConfig, logger *zap.Logger) *AnthropicClient {
	return &AnthropicClient{
		api:       anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey)),
		model:     cfg.AnthropicModel,
		maxTokens: cfg.MaxTokens,
		logger:    logger,
	}
}

// Name identifies the provider selector this client serves.
func (c *AnthropicClient) Name() domain.Provider {
	return domain.ProviderAnthropic
}

// Capabilities reports that prompts must carry an example response shape.
func (c *AnthropicClient) Capabilities() Capabilities {
	return Capabilities{ExampleShape: anthropicExampleShape}
}

// Complete issues a single message request and returns the first text block.
func (c *AnthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	requestID := uuid.NewString()
	c.logger.Info("completion request",
		zap.String("provider", "anthropic"),
		zap.String("request_id", requestID),
		zap.String("model", c.model),
		zap.Int("prompt_chars", len(prompt)),
	)
	c.logger.Debug("completion request body", zap.String("request_id", requestID), zap.String("prompt", prompt))

	message, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(c.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", util.NewProviderError("anthropic", err)
	}

	for _, block := range message.Content {
		if block.Type != "text" {
			continue
		}
		c.logger.Info("completion response",
			zap.String("provider", "anthropic"),
			zap.String("request_id", requestID),
			zap.Int64("input_tokens", message.Usage.InputTokens),
			zap.Int64("output_tokens", message.Usage.OutputTokens),
			zap.Int("response_chars", len(block.Text)),
		)
		c.logger.Debug("completion response body", zap.String("request_id", requestID), zap.String("content", block.Text))
		return block.Text, nil
	}
	return "", util.NewProviderError("anthropic", errors.New("no text content in response"))
}
