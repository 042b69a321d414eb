package llm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"

	"github.com/transcriptions-ai/transcriber/internal/config"
	"github.com/transcriptions-ai/transcriber/internal/domain"
	"github.com/transcriptions-ai/transcriber/pkg/util"
)

// OpenAIClient invokes chat completions with the JSON object response mode.
type OpenAIClient struct {
	api       openai.Client
	model     string
	maxTokens int
	logger    *zap.Logger
}

// NewOpenAIClient builds a client from provider configuration.
func NewOpenAIClient(cfg config.LLMConfig, logger *zap.Logger) *OpenAIClient {
	return &OpenAIClient{
		api:       openai.NewClient(option.WithAPIKey(cfg.OpenAIAPIKey)),
		model:     cfg.OpenAIModel,
		maxTokens: cfg.MaxTokens,
		logger:    logger,
	}
}

// Name identifies the provider selector this client serves.
func (c *OpenAIClient) Name() domain.Provider {
	return domain.ProviderOpenAI
}

// Capabilities reports that the provider constrains output to JSON natively.
func (c *OpenAIClient) Capabilities() Capabilities {
	return Capabilities{StructuredJSON: true}
}

// Complete issues a single chat completion and returns the top response text.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	requestID := uuid.NewString()
	c.logger.Info("completion request",
		zap.String("provider", "openai"),
		zap.String("request_id", requestID),
		zap.String("model", c.model),
		zap.Int("prompt_chars", len(prompt)),
	)
	// Prompt and response bodies carry meeting transcript content; only log
	// them at debug level.
	c.logger.Debug("completion request body", zap.String("request_id", requestID), zap.String("prompt", prompt))

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens: openai.Int(int64(c.maxTokens)),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return "", util.NewProviderError("openai", err)
	}
	if len(resp.Choices) == 0 {
		return "", util.NewProviderError("openai", errors.New("no choices in response"))
	}

	content := resp.Choices[0].Message.Content
	c.logger.Info("completion response",
		zap.String("provider", "openai"),
		zap.String("request_id", requestID),
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
		zap.Int("response_chars", len(content)),
	)
	c.logger.Debug("completion response body", zap.String("request_id", requestID), zap.String("content", content))
	return content, nil
}
