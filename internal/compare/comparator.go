package compare

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/povarna/generative-ai-agents/prompt-compare/internal/config"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
	"github.com/rs/zerolog"
)

const (
	labelWithout = "without the system prompt"
	labelWith    = "with the system prompt"
)

// verdictData is the value every verdict template is executed against.
type verdictData struct {
	Side               string
	Other              string
	Tokens             int
	OtherTokens        int
	CharsPerToken      float64
	OtherCharsPerToken float64
	TokenDelta         int
	CharDelta          int
	TokenChangePct     float64
	CharChangePct      float64
	Failed             string
}

// Comparator turns two responses into metrics and a templated verdict.
// It holds no mutable state and is safe for concurrent use.
type Comparator struct {
	thresholds config.Thresholds
	templates  map[string]*template.Template
	fallbacks  map[string]*template.Template
	logger     *zerolog.Logger
}

func NewComparator(cfg *config.VerdictConfig, logger *zerolog.Logger) (*Comparator, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	templates, err := parseTemplates(cfg.Verdict.Templates)
	if err != nil {
		return nil, err
	}
	fallbacks, err := parseTemplates(config.DefaultTemplates)
	if err != nil {
		return nil, fmt.Errorf("built-in verdict templates: %w", err)
	}

	// Unknown fields only surface at execution time.
	sample := verdictData{Side: labelWith, Other: labelWithout, Failed: "both requests failed"}
	for name, tmpl := range templates {
		if err := tmpl.Execute(&bytes.Buffer{}, sample); err != nil {
			return nil, fmt.Errorf("template %s cannot be rendered: %w", name, err)
		}
	}

	return &Comparator{
		thresholds: cfg.Verdict.Thresholds,
		templates:  templates,
		fallbacks:  fallbacks,
		logger:     logger,
	}, nil
}

func parseTemplates(sources config.Templates) (map[string]*template.Template, error) {
	parsed := make(map[string]*template.Template)
	for name, source := range sources.Named() {
		tmpl, err := template.New(name).Option("missingkey=error").Parse(source)
		if err != nil {
			return nil, fmt.Errorf("failed to parse verdict template %s: %w", name, err)
		}
		parsed[name] = tmpl
	}
	return parsed, nil
}

// Compare is total over any two responses: zero token or character counts
// never divide, and failed responses produce an error verdict.
func (c *Comparator) Compare(without models.ModelResponse, with models.ModelResponse) models.Verdict {
	metrics := ComputeMetrics(without, with)
	verdict := models.Verdict{Metrics: metrics}

	data := verdictData{
		TokenDelta:     metrics.TokenDelta,
		CharDelta:      metrics.CharDelta,
		TokenChangePct: metrics.TokenChangePct,
		CharChangePct:  metrics.CharChangePct,
	}

	switch {
	case without.Failed() || with.Failed():
		verdict.Kind = models.VerdictError
		data.Failed = failedSides(without, with)
		verdict.Text = c.render("failed", data)

	case without.TokenCount == with.TokenCount:
		verdict.Kind = models.VerdictNeutral
		data.Tokens = with.TokenCount
		data.OtherTokens = without.TokenCount
		verdict.Text = c.render("tie", data)

	default:
		sentences := make([]string, 0, 3)

		verdict.MoreDetailed = models.SideWithSystem
		detailed := sideData(data, labelWith, labelWithout, with, without, metrics.CharsPerTokenWith, metrics.CharsPerTokenWithout)
		if without.TokenCount > with.TokenCount {
			verdict.MoreDetailed = models.SideWithoutSystem
			detailed = sideData(data, labelWithout, labelWith, without, with, metrics.CharsPerTokenWithout, metrics.CharsPerTokenWith)
		}
		sentences = append(sentences, c.render("more_detailed", detailed))

		if concise, ok := moreConcise(metrics, without, with); ok {
			verdict.MoreConcise = concise
			conciseData := sideData(data, labelWith, labelWithout, with, without, metrics.CharsPerTokenWith, metrics.CharsPerTokenWithout)
			if concise == models.SideWithoutSystem {
				conciseData = sideData(data, labelWithout, labelWith, without, with, metrics.CharsPerTokenWithout, metrics.CharsPerTokenWith)
			}
			sentences = append(sentences, c.render("more_concise", conciseData))
		}

		kind, name := c.assess(metrics)
		verdict.Kind = kind
		sentences = append(sentences, c.render(name, data))

		verdict.Text = strings.Join(sentences, " ")
	}

	c.logger.Debug().
		Str("verdict_kind", string(verdict.Kind)).
		Str("more_detailed", string(verdict.MoreDetailed)).
		Str("more_concise", string(verdict.MoreConcise)).
		Int("token_delta", metrics.TokenDelta).
		Int("char_delta", metrics.CharDelta).
		Msg("comparison complete")

	return verdict
}

// NoSystem is the verdict used when only the user-only call was made.
func (c *Comparator) NoSystem(without models.ModelResponse, with models.ModelResponse) models.Verdict {
	return models.Verdict{
		Text:    c.render("no_system", verdictData{}),
		Kind:    models.VerdictNeutral,
		Metrics: ComputeMetrics(without, with),
	}
}

func (c *Comparator) assess(m models.Metrics) (models.VerdictKind, string) {
	switch {
	case m.CharChangePct > c.thresholds.DetailPct && m.TokenChangePct < c.thresholds.CostPct:
		return models.VerdictSuccess, "success"
	case m.TokenChangePct > c.thresholds.CostPct && m.CharChangePct < m.TokenChangePct:
		return models.VerdictWarning, "warning"
	case m.CharChangePct < -c.thresholds.DetailPct:
		return models.VerdictInfo, "concise"
	default:
		return models.VerdictInfo, "comparable"
	}
}

func (c *Comparator) render(name string, data verdictData) string {
	var buf bytes.Buffer
	err := c.templates[name].Execute(&buf, data)
	if err == nil {
		return buf.String()
	}
	c.logger.Warn().Err(err).Str("template", name).Msg("verdict template failed, using built-in")

	buf.Reset()
	if err := c.fallbacks[name].Execute(&buf, data); err != nil {
		return name
	}
	return buf.String()
}

// moreConcise picks the side with fewer characters per token. It needs a
// token count on both sides and a strict difference in ratio.
func moreConcise(m models.Metrics, without, with models.ModelResponse) (models.Side, bool) {
	if without.TokenCount <= 0 || with.TokenCount <= 0 {
		return models.SideNone, false
	}
	switch {
	case m.CharsPerTokenWith < m.CharsPerTokenWithout:
		return models.SideWithSystem, true
	case m.CharsPerTokenWithout < m.CharsPerTokenWith:
		return models.SideWithoutSystem, true
	default:
		return models.SideNone, false
	}
}

func sideData(base verdictData, side, other string, r, o models.ModelResponse, cpt, otherCPT float64) verdictData {
	base.Side = side
	base.Other = other
	base.Tokens = r.TokenCount
	base.OtherTokens = o.TokenCount
	base.CharsPerToken = cpt
	base.OtherCharsPerToken = otherCPT
	return base
}

func failedSides(without, with models.ModelResponse) string {
	switch {
	case without.Failed() && with.Failed():
		return "both requests failed"
	case without.Failed():
		return fmt.Sprintf("the request %s failed", labelWithout)
	default:
		return fmt.Sprintf("the request %s failed", labelWith)
	}
}
