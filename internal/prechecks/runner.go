package prechecks

import (
	"errors"

	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
)

type StageRunner struct {
	Checkers []Checker
}

func NewStageRunner(checkers []Checker) *StageRunner {
	return &StageRunner{
		Checkers: checkers,
	}
}

// Run executes every checker and joins their failures, nil when all pass.
func (r *StageRunner) Run(pair models.PromptPair) error {
	var errs []error
	for _, checker := range r.Checkers {
		if err := checker.Check(pair); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
