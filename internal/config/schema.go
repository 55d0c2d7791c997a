package config

// VerdictConfig represents the complete verdict configuration
type VerdictConfig struct {
	Verdict Verdict `yaml:"verdict"`
}

type Verdict struct {
	Thresholds Thresholds `yaml:"thresholds"`
	Templates  Templates  `yaml:"templates"`
}

// Thresholds are percentage changes of the system prompted response
// relative to the user-only response.
type Thresholds struct {
	DetailPct float64 `yaml:"detail_pct"`
	CostPct   float64 `yaml:"cost_pct"`
}

// Templates are text/template sources rendered by the comparator.
type Templates struct {
	Tie          string `yaml:"tie"`
	MoreDetailed string `yaml:"more_detailed"`
	MoreConcise  string `yaml:"more_concise"`
	Success      string `yaml:"success"`
	Warning      string `yaml:"warning"`
	Concise      string `yaml:"concise"`
	Comparable   string `yaml:"comparable"`
	Failed       string `yaml:"failed"`
	NoSystem     string `yaml:"no_system"`
}

// Named returns the templates keyed by their YAML name.
func (t Templates) Named() map[string]string {
	return map[string]string{
		"tie":           t.Tie,
		"more_detailed": t.MoreDetailed,
		"more_concise":  t.MoreConcise,
		"success":       t.Success,
		"warning":       t.Warning,
		"concise":       t.Concise,
		"comparable":    t.Comparable,
		"failed":        t.Failed,
		"no_system":     t.NoSystem,
	}
}
