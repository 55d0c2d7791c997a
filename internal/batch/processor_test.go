package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
)

type fakeExecutor struct {
	calls atomic.Int32
}

func (f *fakeExecutor) Execute(_ context.Context, req models.CompareRequest) (models.ComparisonResult, error) {
	f.calls.Add(1)
	if strings.TrimSpace(req.UserPrompt) == "" {
		return models.ComparisonResult{}, errors.New("invalid prompt: user prompt is required")
	}

	without := models.ModelResponse{TokenCount: 50, CharacterCount: 200, FinishReason: models.FinishReasonStop}
	with := models.ModelResponse{TokenCount: 80, CharacterCount: 400, FinishReason: models.FinishReasonStop}
	if req.SystemPrompt == "fail" {
		with = models.ModelResponse{FinishReason: models.FinishReasonError, ErrorKind: models.ErrorKindNetwork}
		return models.NewComparisonResult(req.RequestID, without, with, models.Verdict{Kind: models.VerdictError}), nil
	}
	return models.NewComparisonResult(req.RequestID, without, with, models.Verdict{
		Kind:         models.VerdictSuccess,
		MoreDetailed: models.SideWithSystem,
		Metrics:      models.Metrics{TokenChangePct: 60, CharChangePct: 100},
	}), nil
}

func collect(ch <-chan Result) []Result {
	var results []Result
	for result := range ch {
		results = append(results, result)
	}
	return results
}

func TestProcessor_ProcessAll(t *testing.T) {
	var records []InputRecord
	for i := 1; i <= 20; i++ {
		records = append(records, InputRecord{
			LineNumber: i,
			Request:    models.CompareRequest{RequestID: fmt.Sprintf("r-%d", i), UserPrompt: "q", SystemPrompt: "s"},
		})
	}

	exec := &fakeExecutor{}
	processor := NewProcessor(exec, 4, newTestLogger())
	results := collect(processor.Process(context.Background(), records))

	if len(results) != 20 {
		t.Fatalf("expected 20 results, got %d", len(results))
	}
	if exec.calls.Load() != 20 {
		t.Errorf("expected 20 executor calls, got %d", exec.calls.Load())
	}

	seen := map[string]bool{}
	for _, result := range results {
		if result.Failed() {
			t.Errorf("unexpected failure on line %d: %s", result.LineNumber, result.Error)
		}
		seen[result.ID] = true
	}
	if len(seen) != 20 {
		t.Errorf("expected 20 distinct IDs, got %d", len(seen))
	}
}

func TestProcessor_ParseAndPrecheckErrors(t *testing.T) {
	records := []InputRecord{
		{LineNumber: 1, Error: errors.New("line 1: invalid JSON")},
		{LineNumber: 2, Request: models.CompareRequest{RequestID: "blank", UserPrompt: " "}},
		{LineNumber: 3, Request: models.CompareRequest{RequestID: "ok", UserPrompt: "q", SystemPrompt: "s"}},
	}

	exec := &fakeExecutor{}
	results := collect(NewProcessor(exec, 0, newTestLogger()).Process(context.Background(), records))

	byLine := map[int]Result{}
	for _, result := range results {
		byLine[result.LineNumber] = result
	}

	if !byLine[1].Failed() || !byLine[2].Failed() {
		t.Error("expected lines 1 and 2 to fail")
	}
	if byLine[3].Failed() || byLine[3].Comparison == nil {
		t.Error("expected line 3 to succeed")
	}
	if exec.calls.Load() != 2 {
		t.Errorf("parse errors must not reach the executor, got %d calls", exec.calls.Load())
	}
}

func TestProcessor_Cancelled(t *testing.T) {
	var records []InputRecord
	for i := 1; i <= 100; i++ {
		records = append(records, InputRecord{LineNumber: i, Request: models.CompareRequest{UserPrompt: "q", SystemPrompt: "s"}})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := collect(NewProcessor(&fakeExecutor{}, 2, newTestLogger()).Process(ctx, records))
	if len(results) >= 100 {
		t.Errorf("expected cancellation to stop processing early, got %d results", len(results))
	}
}

func TestWriter_JSONL(t *testing.T) {
	var buf bytes.Buffer
	writer, err := NewWriter(&buf, FormatJSONL, newTestLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exec := &fakeExecutor{}
	comparison, _ := exec.Execute(context.Background(), models.CompareRequest{RequestID: "a", UserPrompt: "q", SystemPrompt: "s"})
	if err := writer.Write(Result{LineNumber: 1, ID: "a", Comparison: &comparison}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := writer.Write(Result{LineNumber: 2, Error: "line 2: invalid JSON"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}

	var first Result
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("invalid JSON line: %v", err)
	}
	if first.Comparison == nil || first.Comparison.MoreDetailed != models.SideWithSystem {
		t.Errorf("unexpected first line: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"error":"line 2: invalid JSON"`) {
		t.Errorf("unexpected second line: %s", lines[1])
	}
}

func TestWriter_Summary(t *testing.T) {
	var buf bytes.Buffer
	writer, err := NewWriter(&buf, FormatSummary, newTestLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exec := &fakeExecutor{}
	for _, system := range []string{"s", "s", "fail"} {
		comparison, _ := exec.Execute(context.Background(), models.CompareRequest{UserPrompt: "q", SystemPrompt: system})
		if err := writer.Write(Result{Comparison: &comparison}); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	_ = writer.Write(Result{Error: "rejected"})

	if buf.Len() != 0 {
		t.Error("summary format must not write before Close")
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	summary := writer.Summary()
	if summary.Total != 4 || summary.Compared != 3 || summary.Rejected != 1 || summary.ProviderFailures != 1 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if summary.WithSystemMoreDetailed != 2 {
		t.Errorf("expected 2 with_system more detailed, got %d", summary.WithSystemMoreDetailed)
	}
	if summary.AvgTokenChangePct() != 60 {
		t.Errorf("expected avg token change 60, got %f", summary.AvgTokenChangePct())
	}

	out := buf.String()
	for _, want := range []string{"Records", "Provider failures", "Verdict success", "+60.0%"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}
}

func TestNewWriter_InvalidFormat(t *testing.T) {
	if _, err := NewWriter(&bytes.Buffer{}, "csv", newTestLogger()); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
