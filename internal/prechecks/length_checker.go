package prechecks

import (
	"fmt"
	"unicode/utf8"

	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
)

// LengthChecker rejects prompts longer than MaxChars code points.
// A zero MaxChars disables the check.
type LengthChecker struct {
	MaxChars int
}

func NewLengthChecker(maxChars int) *LengthChecker {
	return &LengthChecker{MaxChars: maxChars}
}

func (c *LengthChecker) Name() string {
	return "length-checker"
}

func (c *LengthChecker) Check(pair models.PromptPair) error {
	if c.MaxChars <= 0 {
		return nil
	}

	if n := utf8.RuneCountInString(pair.UserPrompt); n > c.MaxChars {
		return fmt.Errorf("%w: user prompt has %d characters, the limit is %d", ErrInvalidPrompt, n, c.MaxChars)
	}
	if n := utf8.RuneCountInString(pair.SystemPrompt); n > c.MaxChars {
		return fmt.Errorf("%w: system prompt has %d characters, the limit is %d", ErrInvalidPrompt, n, c.MaxChars)
	}

	return nil
}
