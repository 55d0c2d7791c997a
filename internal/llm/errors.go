package llm

import (
	"errors"
	"fmt"
)

var (
	ErrNetwork         = errors.New("network failure")
	ErrInvalidResponse = errors.New("invalid response shape")
	ErrAuthentication  = errors.New("authentication failure")
	ErrEmptyPrompt     = errors.New("empty prompt")
)

// StatusError is returned when the provider answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Message)
}

// Unwrap lets 401 and 403 answers match ErrAuthentication.
func (e *StatusError) Unwrap() error {
	if e.StatusCode == 401 || e.StatusCode == 403 {
		return ErrAuthentication
	}
	return nil
}
