package executor

//go:generate mockgen -source=compare_executor.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
	"github.com/rs/zerolog"
)

// PromptChecker validates a prompt pair before any generation call
type PromptChecker interface {
	Run(pair models.PromptPair) error
}

// ResponseGenerator produces one model response, folding failures into the response
type ResponseGenerator interface {
	Generate(ctx context.Context, userPrompt string, systemPrompt string) models.ModelResponse
}

// Comparator turns two responses into a verdict
type Comparator interface {
	Compare(without models.ModelResponse, with models.ModelResponse) models.Verdict
	NoSystem(without models.ModelResponse, with models.ModelResponse) models.Verdict
}

const noSystemPromptMessage = "no system prompt provided"

type Executor struct {
	checker    PromptChecker
	generator  ResponseGenerator
	comparator Comparator
	logger     *zerolog.Logger
}

func NewExecutor(
	checker PromptChecker,
	generator ResponseGenerator,
	comparator Comparator,
	logger *zerolog.Logger,
) *Executor {
	return &Executor{
		checker:    checker,
		generator:  generator,
		comparator: comparator,
		logger:     logger,
	}
}

// Normalize converts an inbound request into a PromptPair, assigning an ID when missing.
func Normalize(req models.CompareRequest) models.PromptPair {
	id := req.RequestID
	if id == "" {
		id = uuid.NewString()
	}
	return models.PromptPair{
		RequestID:    id,
		UserPrompt:   req.UserPrompt,
		SystemPrompt: req.SystemPrompt,
		CreatedAt:    time.Now(),
	}
}

// Execute validates the request, runs both generations and compares them.
// The only error returned is a precheck failure; provider failures are part
// of the result.
func (e *Executor) Execute(ctx context.Context, req models.CompareRequest) (models.ComparisonResult, error) {
	pair := Normalize(req)
	e.logger.Info().
		Str("requestID", pair.RequestID).
		Int("userPromptLen", len(pair.UserPrompt)).
		Int("systemPromptLen", len(pair.SystemPrompt)).
		Msg("starting comparison")

	if err := e.checker.Run(pair); err != nil {
		e.logger.Warn().Str("requestID", pair.RequestID).Err(err).Msg("prechecks failed")
		return models.ComparisonResult{}, fmt.Errorf("request %s: %w", pair.RequestID, err)
	}

	if !pair.HasSystemPrompt() {
		without := e.generator.Generate(ctx, pair.UserPrompt, "")
		with := models.ModelResponse{
			FinishReason: models.FinishReasonOther,
			Error:        noSystemPromptMessage,
		}
		verdict := e.comparator.NoSystem(without, with)
		e.logResult(pair.RequestID, verdict)
		return models.NewComparisonResult(pair.RequestID, without, with, verdict), nil
	}

	var (
		wg      sync.WaitGroup
		without models.ModelResponse
		with    models.ModelResponse
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		without = e.generator.Generate(ctx, pair.UserPrompt, "")
	}()
	go func() {
		defer wg.Done()
		with = e.generator.Generate(ctx, pair.UserPrompt, pair.SystemPrompt)
	}()
	wg.Wait()

	verdict := e.comparator.Compare(without, with)
	e.logResult(pair.RequestID, verdict)
	return models.NewComparisonResult(pair.RequestID, without, with, verdict), nil
}

func (e *Executor) logResult(id string, verdict models.Verdict) {
	e.logger.
		Info().
		Str("requestID", id).
		Str("verdictKind", string(verdict.Kind)).
		Str("moreDetailed", string(verdict.MoreDetailed)).
		Msg("comparison complete")
}
