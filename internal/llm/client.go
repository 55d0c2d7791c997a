package llm

import (
	"context"
)

// Generator is an interface for invoking a text generation model.
// This allows mocking in tests without making real API calls
type Generator interface {
	Generate(ctx context.Context, request Request) (*Response, error)
	Name() string
	Model() string
}
