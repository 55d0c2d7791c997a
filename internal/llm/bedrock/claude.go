package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/llm"
)

type claudeMessageRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Temperature      *float64        `json:"temperature,omitempty"`
	System           string          `json:"system,omitempty"`
	Messages         []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeMessageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      *struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

var anthropicVersion = "bedrock-2023-05-31"

// The Messages API requires max_tokens on every call.
const defaultMaxTokens = 1024

func buildPayload(request llm.Request) claudeMessageRequest {
	maxTokens := request.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return claudeMessageRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        maxTokens,
		Temperature:      request.Temperature,
		System:           request.SystemPrompt,
		Messages: []claudeMessage{
			{
				Role:    "user",
				Content: request.Prompt,
			},
		},
	}
}

func (c *Client) Generate(ctx context.Context, request llm.Request) (*llm.Response, error) {
	if request.Prompt == "" {
		return nil, llm.ErrEmptyPrompt
	}

	byes, err := json.Marshal(buildPayload(request))
	if err != nil {
		return nil, fmt.Errorf("Unable to serialize claude request. Error: %w", err)
	}

	output, err := c.Client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     &c.ModelID,
		Body:        byes,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, classifyError(err)
	}

	var response claudeMessageResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal bedrock response: %w", llm.ErrInvalidResponse, err)
	}

	if len(response.Content) == 0 && response.StopReason == "" {
		return nil, fmt.Errorf("%w: bedrock response has no content", llm.ErrInvalidResponse)
	}

	var content strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			content.WriteString(block.Text)
		}
	}

	result := &llm.Response{
		Content:    content.String(),
		StopReason: response.StopReason,
	}
	if response.Usage != nil {
		result.PromptTokens = response.Usage.InputTokens
		result.CompletionTokens = response.Usage.OutputTokens
		result.TotalTokens = response.Usage.InputTokens + response.Usage.OutputTokens
	}

	return result, nil
}

func classifyError(err error) error {
	var accessDenied *types.AccessDeniedException
	if errors.As(err, &accessDenied) {
		return fmt.Errorf("%w: %w", llm.ErrAuthentication, err)
	}

	var validation *types.ValidationException
	if errors.As(err, &validation) {
		return &llm.StatusError{StatusCode: 400, Message: validation.ErrorMessage()}
	}

	var throttling *types.ThrottlingException
	if errors.As(err, &throttling) {
		return &llm.StatusError{StatusCode: 429, Message: throttling.ErrorMessage()}
	}

	var modelErr *types.ModelErrorException
	if errors.As(err, &modelErr) {
		return &llm.StatusError{StatusCode: 424, Message: modelErr.ErrorMessage()}
	}

	return fmt.Errorf("%w: unable to invoke claude model: %w", llm.ErrNetwork, err)
}
