package prechecks

import (
	"errors"

	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
)

// ErrInvalidPrompt marks failures that must be reported to the caller as a
// local validation error, before any provider call.
var ErrInvalidPrompt = errors.New("invalid prompt")

type Checker interface {
	Name() string
	Check(pair models.PromptPair) error
}
