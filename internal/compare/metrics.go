package compare

import (
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
)

// ComputeMetrics reports the change from the user-only response to the
// system prompted one. Percentages are 0 when the base is 0.
func ComputeMetrics(without models.ModelResponse, with models.ModelResponse) models.Metrics {
	charDelta := with.CharacterCount - without.CharacterCount
	tokenDelta := with.TokenCount - without.TokenCount

	return models.Metrics{
		CharDelta:            charDelta,
		TokenDelta:           tokenDelta,
		PromptTokenDelta:     with.PromptTokens - without.PromptTokens,
		TotalTokenDelta:      with.TotalTokens - without.TotalTokens,
		CharChangePct:        percentChange(charDelta, without.CharacterCount),
		TokenChangePct:       percentChange(tokenDelta, without.TokenCount),
		CharsPerTokenWithout: charsPerToken(without),
		CharsPerTokenWith:    charsPerToken(with),
	}
}

func percentChange(delta int, base int) float64 {
	if base == 0 {
		return 0
	}
	return float64(delta) / float64(base) * 100
}

func charsPerToken(r models.ModelResponse) float64 {
	if r.TokenCount <= 0 {
		return 0
	}
	return float64(r.CharacterCount) / float64(r.TokenCount)
}
