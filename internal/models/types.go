package models

import (
	"strings"
	"time"
)

type FinishReason string

const (
	FinishReasonStop      FinishReason = "STOP"
	FinishReasonMaxTokens FinishReason = "MAX_TOKENS"
	FinishReasonSafety    FinishReason = "SAFETY"
	FinishReasonOther     FinishReason = "OTHER"
	FinishReasonError     FinishReason = "ERROR"
)

type ErrorKind string

const (
	ErrorKindNetwork         ErrorKind = "network_failure"
	ErrorKindInvalidResponse ErrorKind = "invalid_response_shape"
	ErrorKindAuthentication  ErrorKind = "authentication_failure"
	ErrorKindEmptyPrompt     ErrorKind = "empty_prompt_input"
	ErrorKindUpstream        ErrorKind = "upstream_error"
)

type VerdictKind string

const (
	VerdictSuccess VerdictKind = "success"
	VerdictWarning VerdictKind = "warning"
	VerdictInfo    VerdictKind = "info"
	VerdictNeutral VerdictKind = "neutral"
	VerdictError   VerdictKind = "error"
)

// Side identifies one of the two responses of a comparison.
type Side string

const (
	SideNone          Side = ""
	SideWithoutSystem Side = "without_system"
	SideWithSystem    Side = "with_system"
)

// Input message

type CompareRequest struct {
	RequestID    string `json:"request_id,omitempty" description:"Optional caller supplied identifier"`
	UserPrompt   string `json:"user_prompt" description:"User query sent on both calls"`
	SystemPrompt string `json:"system_prompt,omitempty" description:"System instruction used on the second call"`
}

// Normalized internal object
type PromptPair struct {
	RequestID    string    `json:"request_id"`
	UserPrompt   string    `json:"user_prompt"`
	SystemPrompt string    `json:"system_prompt,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasSystemPrompt reports whether the pair carries a usable system instruction.
func (p PromptPair) HasSystemPrompt() bool {
	return strings.TrimSpace(p.SystemPrompt) != ""
}

// One generation call's output
type ModelResponse struct {
	Text           string        `json:"text"`
	TokenCount     int           `json:"token_count"`
	CharacterCount int           `json:"character_count"`
	FinishReason   FinishReason  `json:"finish_reason"`
	PromptTokens   int           `json:"prompt_tokens"`
	TotalTokens    int           `json:"total_tokens"`
	Provider       string        `json:"provider,omitempty"`
	Model          string        `json:"model,omitempty"`
	Latency        time.Duration `json:"latency_ns"`
	ErrorKind      ErrorKind     `json:"error_kind,omitempty"`
	Error          string        `json:"error,omitempty"`
}

func (r ModelResponse) Failed() bool {
	return r.FinishReason == FinishReasonError
}

type Metrics struct {
	CharDelta            int     `json:"char_delta"`
	TokenDelta           int     `json:"token_delta"`
	PromptTokenDelta     int     `json:"prompt_token_delta"`
	TotalTokenDelta      int     `json:"total_token_delta"`
	CharChangePct        float64 `json:"char_change_pct"`
	TokenChangePct       float64 `json:"token_change_pct"`
	CharsPerTokenWithout float64 `json:"chars_per_token_without"`
	CharsPerTokenWith    float64 `json:"chars_per_token_with"`
}

// Verdict is the comparator's output for a pair of responses.
type Verdict struct {
	Text         string      `json:"verdict"`
	Kind         VerdictKind `json:"verdict_kind"`
	MoreDetailed Side        `json:"more_detailed,omitempty"`
	MoreConcise  Side        `json:"more_concise,omitempty"`
	Metrics      Metrics     `json:"metrics"`
}

// Final output returned to callers
type ComparisonResult struct {
	RequestID     string        `json:"request_id"`
	WithoutSystem ModelResponse `json:"without_system"`
	WithSystem    ModelResponse `json:"with_system"`
	Verdict       string        `json:"verdict"`
	VerdictKind   VerdictKind   `json:"verdict_kind"`
	MoreDetailed  Side          `json:"more_detailed,omitempty"`
	MoreConcise   Side          `json:"more_concise,omitempty"`
	Metrics       Metrics       `json:"metrics"`
}

func NewComparisonResult(id string, without, with ModelResponse, verdict Verdict) ComparisonResult {
	return ComparisonResult{
		RequestID:     id,
		WithoutSystem: without,
		WithSystem:    with,
		Verdict:       verdict.Text,
		VerdictKind:   verdict.Kind,
		MoreDetailed:  verdict.MoreDetailed,
		MoreConcise:   verdict.MoreConcise,
		Metrics:       verdict.Metrics,
	}
}
