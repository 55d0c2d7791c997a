package llm

import (
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
)

func TestNormalizeFinishReason(t *testing.T) {
	tests := []struct {
		reason string
		want   models.FinishReason
	}{
		{"STOP", models.FinishReasonStop},
		{"end_turn", models.FinishReasonStop},
		{"stop", models.FinishReasonStop},
		{"MAX_TOKENS", models.FinishReasonMaxTokens},
		{"length", models.FinishReasonMaxTokens},
		{"SAFETY", models.FinishReasonSafety},
		{"content_filter", models.FinishReasonSafety},
		{"RECITATION", models.FinishReasonOther},
		{"", models.FinishReasonOther},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			if got := NormalizeFinishReason(tt.reason); got != tt.want {
				t.Errorf("NormalizeFinishReason(%q) = %s, want %s", tt.reason, got, tt.want)
			}
		})
	}
}

func TestResponse_OutputTokens(t *testing.T) {
	tests := []struct {
		name string
		resp Response
		want int
	}{
		{"completion reported", Response{CompletionTokens: 42, PromptTokens: 5, TotalTokens: 47}, 42},
		{"derived from total", Response{PromptTokens: 5, TotalTokens: 47}, 42},
		{"nothing reported", Response{}, 0},
		{"inconsistent usage", Response{PromptTokens: 10, TotalTokens: 4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resp.OutputTokens(); got != tt.want {
				t.Errorf("OutputTokens() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStatusError_Unwrap(t *testing.T) {
	if !errors.Is(&StatusError{StatusCode: 401}, ErrAuthentication) {
		t.Error("expected 401 to match ErrAuthentication")
	}
	if !errors.Is(&StatusError{StatusCode: 403}, ErrAuthentication) {
		t.Error("expected 403 to match ErrAuthentication")
	}
	if errors.Is(&StatusError{StatusCode: 500}, ErrAuthentication) {
		t.Error("expected 500 not to match ErrAuthentication")
	}
}
