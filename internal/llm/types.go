package llm

type Request struct {
	Prompt       string
	SystemPrompt string
	MaxTokens    int
	Temperature  *float64
}

// HasSystemPrompt reports whether the system instruction must be sent.
func (r Request) HasSystemPrompt() bool {
	return r.SystemPrompt != ""
}

type Response struct {
	Content          string
	StopReason       string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// OutputTokens returns the candidate token count, deriving it from the
// total when the provider only reports total and prompt usage.
func (r *Response) OutputTokens() int {
	if r.CompletionTokens > 0 {
		return r.CompletionTokens
	}
	if derived := r.TotalTokens - r.PromptTokens; derived > 0 {
		return derived
	}
	return 0
}
