package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/povarna/generative-ai-agents/prompt-compare/internal/llm"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
	"github.com/rs/zerolog"
)

type Options struct {
	Timeout     time.Duration
	MaxTokens   int
	Temperature *float64
}

// Client wraps a provider and never fails: every error is folded into a
// ModelResponse with FinishReasonError so a comparison can still be rendered.
type Client struct {
	generator llm.Generator
	options   Options
	logger    *zerolog.Logger
}

func NewClient(generator llm.Generator, options Options, logger *zerolog.Logger) *Client {
	return &Client{
		generator: generator,
		options:   options,
		logger:    logger,
	}
}

func (c *Client) Generate(ctx context.Context, userPrompt string, systemPrompt string) models.ModelResponse {
	now := time.Now()

	if strings.TrimSpace(userPrompt) == "" {
		return c.failure(llm.ErrEmptyPrompt, now)
	}

	if c.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.options.Timeout)
		defer cancel()
	}

	resp, err := c.generator.Generate(ctx, llm.Request{
		Prompt:       userPrompt,
		SystemPrompt: systemPrompt,
		MaxTokens:    c.options.MaxTokens,
		Temperature:  c.options.Temperature,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w: request timed out after %s", llm.ErrNetwork, c.options.Timeout)
		}
		return c.failure(err, now)
	}

	result := models.ModelResponse{
		Text:           resp.Content,
		TokenCount:     resp.OutputTokens(),
		CharacterCount: utf8.RuneCountInString(resp.Content),
		FinishReason:   llm.NormalizeFinishReason(resp.StopReason),
		PromptTokens:   resp.PromptTokens,
		TotalTokens:    resp.TotalTokens,
		Provider:       c.generator.Name(),
		Model:          c.generator.Model(),
		Latency:        time.Since(now),
	}

	c.logger.Info().
		Str("provider", result.Provider).
		Bool("system_prompt", systemPrompt != "").
		Int("tokens", result.TokenCount).
		Int("characters", result.CharacterCount).
		Str("finish_reason", string(result.FinishReason)).
		Dur("latency", result.Latency).
		Msg("generation completed")

	return result
}

func (c *Client) failure(err error, start time.Time) models.ModelResponse {
	kind := Classify(err)

	c.logger.Warn().
		Err(err).
		Str("provider", c.generator.Name()).
		Str("error_kind", string(kind)).
		Msg("generation failed")

	return models.ModelResponse{
		FinishReason: models.FinishReasonError,
		Provider:     c.generator.Name(),
		Model:        c.generator.Model(),
		Latency:      time.Since(start),
		ErrorKind:    kind,
		Error:        err.Error(),
	}
}

// Classify maps a provider error onto the error kinds exposed to callers.
func Classify(err error) models.ErrorKind {
	var statusErr *llm.StatusError
	switch {
	case errors.Is(err, llm.ErrEmptyPrompt):
		return models.ErrorKindEmptyPrompt
	case errors.Is(err, llm.ErrAuthentication):
		return models.ErrorKindAuthentication
	case errors.Is(err, llm.ErrInvalidResponse):
		return models.ErrorKindInvalidResponse
	case errors.As(err, &statusErr):
		return models.ErrorKindUpstream
	default:
		return models.ErrorKindNetwork
	}
}
