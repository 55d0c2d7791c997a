package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/povarna/generative-ai-agents/prompt-compare/internal/llm"
)

// Responses larger than this are treated as malformed.
const maxResponseBytes = 8 << 20

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
}

type generateResponse struct {
	Candidates     []candidate     `json:"candidates"`
	UsageMetadata  *usageMetadata  `json:"usageMetadata"`
	PromptFeedback *promptFeedback `json:"promptFeedback"`
}

type candidate struct {
	Content      *content `json:"content"`
	FinishReason string   `json:"finishReason"`
}

type usageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

type promptFeedback struct {
	BlockReason string `json:"blockReason"`
}

type errorEnvelope struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Details []struct {
			Reason string `json:"reason"`
		} `json:"details"`
	} `json:"error"`
}

func buildPayload(request llm.Request) generateRequest {
	payload := generateRequest{
		Contents: []content{
			{
				Role:  "user",
				Parts: []part{{Text: request.Prompt}},
			},
		},
	}

	if request.HasSystemPrompt() {
		payload.SystemInstruction = &content{
			Parts: []part{{Text: request.SystemPrompt}},
		}
	}

	if request.MaxTokens > 0 || request.Temperature != nil {
		payload.GenerationConfig = &generationConfig{
			MaxOutputTokens: request.MaxTokens,
			Temperature:     request.Temperature,
		}
	}

	return payload
}

func (c *Client) Generate(ctx context.Context, request llm.Request) (*llm.Response, error) {
	if request.Prompt == "" {
		return nil, llm.ErrEmptyPrompt
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: gemini API key is not configured", llm.ErrAuthentication)
	}

	body, err := json.Marshal(buildPayload(request))
	if err != nil {
		return nil, fmt.Errorf("unable to serialize gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", c.BaseURL, c.ModelID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("unable to create gemini request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	httpResp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: gemini request failed: %w", llm.ErrNetwork, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read gemini response: %w", llm.ErrNetwork, err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, statusError(httpResp.StatusCode, respBody)
	}

	return parseResponse(respBody)
}

func parseResponse(body []byte) (*llm.Response, error) {
	var response generateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal gemini response: %w", llm.ErrInvalidResponse, err)
	}

	result := &llm.Response{}
	if response.UsageMetadata != nil {
		result.PromptTokens = response.UsageMetadata.PromptTokenCount
		result.CompletionTokens = response.UsageMetadata.CandidatesTokenCount
		result.TotalTokens = response.UsageMetadata.TotalTokenCount
	}

	if len(response.Candidates) == 0 {
		// The prompt itself was blocked, nothing was generated.
		if response.PromptFeedback != nil && response.PromptFeedback.BlockReason != "" {
			result.StopReason = "SAFETY"
			return result, nil
		}
		return nil, fmt.Errorf("%w: no candidates in gemini response", llm.ErrInvalidResponse)
	}

	first := response.Candidates[0]
	if first.Content == nil || len(first.Content.Parts) == 0 {
		if first.FinishReason == "" {
			return nil, fmt.Errorf("%w: gemini candidate has no content", llm.ErrInvalidResponse)
		}
		result.StopReason = first.FinishReason
		return result, nil
	}

	var text bytes.Buffer
	for _, p := range first.Content.Parts {
		text.WriteString(p.Text)
	}
	result.Content = text.String()
	result.StopReason = first.FinishReason

	return result, nil
}

func statusError(code int, body []byte) error {
	var envelope errorEnvelope
	message := ""
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		message = envelope.Error.Message
		for _, detail := range envelope.Error.Details {
			// Gemini answers an invalid key with 400 rather than 401.
			if detail.Reason == "API_KEY_INVALID" {
				return fmt.Errorf("%w: %s", llm.ErrAuthentication, message)
			}
		}
	}

	return &llm.StatusError{StatusCode: code, Message: message}
}
