package batch

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/prompt-compare/internal/executor"
)

// Validate runs the prechecks on every record without calling a model.
// It returns one error per rejected record, each naming its input line.
func Validate(records []InputRecord, checker executor.PromptChecker) []error {
	var errs []error
	for _, record := range records {
		if record.Error != nil {
			errs = append(errs, record.Error)
			continue
		}
		if err := checker.Run(executor.Normalize(record.Request)); err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", record.LineNumber, err))
		}
	}
	return errs
}
