package prechecks

import (
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/prompt-compare/internal/llm"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
)

type EmptyPromptChecker struct {
}

func NewEmptyPromptChecker() *EmptyPromptChecker {
	return &EmptyPromptChecker{}
}

func (c *EmptyPromptChecker) Name() string {
	return "empty-prompt-checker"
}

func (c *EmptyPromptChecker) Check(pair models.PromptPair) error {
	if strings.TrimSpace(pair.UserPrompt) == "" {
		return fmt.Errorf("%w: %w: user prompt is required", ErrInvalidPrompt, llm.ErrEmptyPrompt)
	}
	return nil
}
