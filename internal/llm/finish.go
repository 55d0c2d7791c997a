package llm

import (
	"strings"

	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
)

// NormalizeFinishReason maps a provider stop reason onto the shared enum.
func NormalizeFinishReason(reason string) models.FinishReason {
	switch strings.ToLower(strings.TrimSpace(reason)) {
	case "stop", "end_turn", "stop_sequence":
		return models.FinishReasonStop
	case "max_tokens", "length":
		return models.FinishReasonMaxTokens
	case "safety", "content_filter", "refusal", "prohibited_content", "blocklist", "spii", "guardrail_intervened":
		return models.FinishReasonSafety
	default:
		return models.FinishReasonOther
	}
}
