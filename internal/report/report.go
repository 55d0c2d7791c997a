package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
)

type Options struct {
	// Scientific applies FormatScientific to the response texts.
	Scientific bool
	// HideText prints metrics and the verdict only.
	HideText bool
}

// Write prints a side-by-side text report of a comparison.
func Write(w io.Writer, result models.ComparisonResult, opts Options) error {
	ew := &errWriter{w: w}

	ew.printf("Request %s\n", result.RequestID)
	if !opts.HideText {
		writeResponse(ew, "Without System Prompt", result.WithoutSystem, opts)
		writeResponse(ew, "With System Prompt", result.WithSystem, opts)
	}
	if ew.err != nil {
		return ew.err
	}

	ew.printf("\n== Metrics ==\n")
	tw := tabwriter.NewWriter(ew, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Metric\tWithout\tWith\tChange")
	fmt.Fprintf(tw, "Tokens\t%d\t%d\t%s\n",
		result.WithoutSystem.TokenCount, result.WithSystem.TokenCount, signedPct(result.Metrics.TokenChangePct))
	fmt.Fprintf(tw, "Characters\t%d\t%d\t%s\n",
		result.WithoutSystem.CharacterCount, result.WithSystem.CharacterCount, signedPct(result.Metrics.CharChangePct))
	fmt.Fprintf(tw, "Chars/token\t%.2f\t%.2f\t\n",
		result.Metrics.CharsPerTokenWithout, result.Metrics.CharsPerTokenWith)
	fmt.Fprintf(tw, "Prompt tokens\t%d\t%d\t%+d\n",
		result.WithoutSystem.PromptTokens, result.WithSystem.PromptTokens, result.Metrics.PromptTokenDelta)
	if err := tw.Flush(); err != nil {
		return err
	}

	ew.printf("\n== Verdict [%s] ==\n%s\n", result.VerdictKind, result.Verdict)
	if result.MoreDetailed != models.SideNone {
		ew.printf("More detailed: %s\n", sideLabel(result.MoreDetailed))
	}
	if result.MoreConcise != models.SideNone {
		ew.printf("More concise: %s\n", sideLabel(result.MoreConcise))
	}
	return ew.err
}

func writeResponse(ew *errWriter, title string, r models.ModelResponse, opts Options) {
	ew.printf("\n== %s ==\n", title)

	switch {
	case r.Failed():
		ew.printf("Error (%s): %s\n", r.ErrorKind, r.Error)
		return
	case r.FinishReason == models.FinishReasonOther && r.Text == "":
		ew.printf("(%s)\n", r.Error)
		return
	}

	text := r.Text
	if opts.Scientific {
		text = FormatScientific(text)
	}
	ew.printf("%s\n", strings.TrimRight(text, "\n"))
	ew.printf("-- finish: %s, latency: %s\n", r.FinishReason, r.Latency.Round(time.Millisecond))
}

func sideLabel(side models.Side) string {
	switch side {
	case models.SideWithSystem:
		return "With System Prompt"
	case models.SideWithoutSystem:
		return "Without System Prompt"
	default:
		return string(side)
	}
}

func signedPct(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func (e *errWriter) printf(format string, args ...any) {
	fmt.Fprintf(e, format, args...)
}
