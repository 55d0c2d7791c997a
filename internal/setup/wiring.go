package setup

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/prompt-compare/internal/compare"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/config"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/executor"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/generation"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/llm"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/llm/gemini"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/llm/gpt"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/prechecks"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Executor  *executor.Executor
	Generator llm.Generator
	Logger    *zerolog.Logger
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	llmClient, err := createLLMClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	return Build(cfg, llmClient, logger)
}

// Build wires the comparison pipeline around an already constructed provider.
func Build(cfg *Config, llmClient llm.Generator, logger *zerolog.Logger) (*Dependencies, error) {
	verdictConfig, err := config.LoadVerdictConfig(cfg.VerdictConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load verdict config: %w", err)
	}

	comparator, err := compare.NewComparator(verdictConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build comparator: %w", err)
	}

	stageRunner := NewPrechecks(cfg)

	generator := generation.NewClient(llmClient, generation.Options{
		Timeout:     cfg.RequestTimeout,
		MaxTokens:   cfg.MaxOutputTokens,
		Temperature: cfg.Temperature,
	}, logger)

	exec := executor.NewExecutor(stageRunner, generator, comparator, logger)

	logger.Info().
		Str("provider", llmClient.Name()).
		Str("model", llmClient.Model()).
		Dur("timeout", cfg.RequestTimeout).
		Msg("Comparison pipeline wired")

	return &Dependencies{
		Executor:  exec,
		Generator: llmClient,
		Logger:    logger,
	}, nil
}

func createLLMClient(ctx context.Context, cfg *Config) (llm.Generator, error) {
	switch cfg.Provider {
	case ProviderGemini, "":
		return gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModelID, cfg.GeminiBaseURL, nil), nil
	case ProviderBedrock:
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	case ProviderOpenAI:
		return gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIModelID), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

// NewPrechecks builds the checks every request passes before generation.
func NewPrechecks(cfg *Config) *prechecks.StageRunner {
	return prechecks.NewStageRunner([]prechecks.Checker{
		prechecks.NewEmptyPromptChecker(),
		prechecks.NewLengthChecker(cfg.MaxPromptChars),
	})
}
