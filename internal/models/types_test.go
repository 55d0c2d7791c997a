package models

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestComparisonResult_JSONRoundTrip(t *testing.T) {
	original := NewComparisonResult(
		"req-1",
		ModelResponse{
			Text:           "H₂O is water.",
			TokenCount:     50,
			CharacterCount: 13,
			FinishReason:   FinishReasonStop,
			PromptTokens:   4,
			TotalTokens:    54,
			Provider:       "gemini",
			Model:          "gemini-2.5-flash-preview-09-2025",
			Latency:        1500 * time.Millisecond,
		},
		ModelResponse{
			FinishReason: FinishReasonError,
			ErrorKind:    ErrorKindAuthentication,
			Error:        "authentication failed: status 403",
		},
		Verdict{
			Text: "The comparison is incomplete: With System Prompt failed.",
			Kind: VerdictError,
			Metrics: Metrics{
				CharDelta:            -13,
				TokenDelta:           -50,
				CharChangePct:        -100,
				TokenChangePct:       -100,
				CharsPerTokenWithout: 0.26,
			},
		},
	)

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded ComparisonResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip changed the result:\n got %+v\nwant %+v", decoded, original)
	}
}

func TestPromptPair_HasSystemPrompt(t *testing.T) {
	tests := []struct {
		system string
		want   bool
	}{
		{system: "", want: false},
		{system: " \n\t", want: false},
		{system: "You are a chemist.", want: true},
	}

	for _, tt := range tests {
		pair := PromptPair{UserPrompt: "q", SystemPrompt: tt.system}
		if got := pair.HasSystemPrompt(); got != tt.want {
			t.Errorf("HasSystemPrompt(%q) = %v, want %v", tt.system, got, tt.want)
		}
	}
}

func TestModelResponse_Failed(t *testing.T) {
	if (ModelResponse{FinishReason: FinishReasonStop}).Failed() {
		t.Error("STOP must not be a failure")
	}
	if (ModelResponse{FinishReason: FinishReasonOther}).Failed() {
		t.Error("OTHER must not be a failure")
	}
	if !(ModelResponse{FinishReason: FinishReasonError}).Failed() {
		t.Error("ERROR must be a failure")
	}
}
