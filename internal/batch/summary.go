package batch

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
)

// Summary accumulates aggregate statistics over batch results.
type Summary struct {
	Total                  int                        `json:"total"`
	Compared               int                        `json:"compared"`
	Rejected               int                        `json:"rejected"`
	ProviderFailures       int                        `json:"provider_failures"`
	ByVerdict              map[models.VerdictKind]int `json:"by_verdict"`
	WithSystemMoreDetailed int                        `json:"with_system_more_detailed"`
	WithoutMoreDetailed    int                        `json:"without_system_more_detailed"`

	tokenChangeSum float64
	charChangeSum  float64
	measured       int
}

func NewSummary() *Summary {
	return &Summary{ByVerdict: map[models.VerdictKind]int{}}
}

func (s *Summary) Add(result Result) {
	s.Total++
	if result.Failed() || result.Comparison == nil {
		s.Rejected++
		return
	}

	c := result.Comparison
	s.Compared++
	s.ByVerdict[c.VerdictKind]++
	if c.WithoutSystem.Failed() || c.WithSystem.Failed() {
		s.ProviderFailures++
		return
	}

	switch c.MoreDetailed {
	case models.SideWithSystem:
		s.WithSystemMoreDetailed++
	case models.SideWithoutSystem:
		s.WithoutMoreDetailed++
	}

	if c.WithSystem.FinishReason != models.FinishReasonOther {
		s.tokenChangeSum += c.Metrics.TokenChangePct
		s.charChangeSum += c.Metrics.CharChangePct
		s.measured++
	}
}

func (s *Summary) AvgTokenChangePct() float64 {
	if s.measured == 0 {
		return 0
	}
	return s.tokenChangeSum / float64(s.measured)
}

func (s *Summary) AvgCharChangePct() float64 {
	if s.measured == 0 {
		return 0
	}
	return s.charChangeSum / float64(s.measured)
}

func (s *Summary) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	tw := tabwriter.NewWriter(cw, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Records\t%d\n", s.Total)
	fmt.Fprintf(tw, "Compared\t%d\n", s.Compared)
	fmt.Fprintf(tw, "Rejected\t%d\n", s.Rejected)
	fmt.Fprintf(tw, "Provider failures\t%d\n", s.ProviderFailures)
	fmt.Fprintf(tw, "With system more detailed\t%d\n", s.WithSystemMoreDetailed)
	fmt.Fprintf(tw, "Without system more detailed\t%d\n", s.WithoutMoreDetailed)
	fmt.Fprintf(tw, "Avg token change\t%+.1f%%\n", s.AvgTokenChangePct())
	fmt.Fprintf(tw, "Avg character change\t%+.1f%%\n", s.AvgCharChangePct())

	kinds := make([]string, 0, len(s.ByVerdict))
	for kind := range s.ByVerdict {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(tw, "Verdict %s\t%d\n", kind, s.ByVerdict[models.VerdictKind(kind)])
	}

	if err := tw.Flush(); err != nil {
		return cw.n, err
	}
	return cw.n, cw.err
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	if err != nil && c.err == nil {
		c.err = err
	}
	return n, err
}
