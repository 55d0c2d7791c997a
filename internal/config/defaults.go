package config

const DefaultVerdictConfigPath = "configs/verdict.yaml"

const (
	DefaultDetailPct = 5.0
	DefaultCostPct   = 15.0
)

var DefaultTemplates = Templates{
	Tie:          `Both responses used {{.Tokens}} tokens, so neither is more detailed.`,
	MoreDetailed: `The response {{.Side}} is more detailed ({{.Tokens}} vs {{.OtherTokens}} tokens).`,
	MoreConcise:  `The response {{.Side}} is more concise ({{printf "%.2f" .CharsPerToken}} vs {{printf "%.2f" .OtherCharsPerToken}} characters per token).`,
	Success:      `The system prompt appears better: it produced a more detailed answer ({{printf "%+.1f" .CharChangePct}}% characters) without a disproportionate increase in cost ({{printf "%+.1f" .TokenChangePct}}% tokens).`,
	Warning:      `The system prompt is more expensive: tokens changed by {{printf "%+.1f" .TokenChangePct}}% for a {{printf "%+.1f" .CharChangePct}}% change in length. Consider refining the system prompt.`,
	Concise:      `The system prompt made the answer more concise ({{printf "%+.1f" .CharChangePct}}% characters), which suits brevity and lower cost.`,
	Comparable:   `The results are comparable: the system prompt did not drastically change the output's size or cost.`,
	Failed:       `The comparison is incomplete: {{.Failed}}.`,
	NoSystem:     `No system prompt provided; nothing to compare.`,
}

// Default returns the built-in verdict configuration.
func Default() *VerdictConfig {
	return &VerdictConfig{
		Verdict: Verdict{
			Thresholds: Thresholds{DetailPct: DefaultDetailPct, CostPct: DefaultCostPct},
			Templates:  DefaultTemplates,
		},
	}
}
