package gpt

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/llm"
)

func buildParams(modelID string, request llm.Request) openai.ChatCompletionNewParams {
	var messages []openai.ChatCompletionMessageParamUnion
	if request.HasSystemPrompt() {
		messages = append(messages, openai.SystemMessage(request.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(request.Prompt))

	params := openai.ChatCompletionNewParams{
		Messages: messages,
		Model:    openai.ChatModel(modelID),
	}
	if request.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(request.MaxTokens))
	}
	if request.Temperature != nil {
		params.Temperature = openai.Float(*request.Temperature)
	}

	return params
}

func (c *Client) Generate(ctx context.Context, request llm.Request) (*llm.Response, error) {
	if request.Prompt == "" {
		return nil, llm.ErrEmptyPrompt
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: OpenAI API key is not configured", llm.ErrAuthentication)
	}

	output, err := c.Client.Chat.Completions.New(ctx, buildParams(c.ModelID, request))
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return nil, &llm.StatusError{StatusCode: apiErr.StatusCode, Message: apiErr.Message}
		}
		return nil, fmt.Errorf("%w: unable to invoke gpt model: %w", llm.ErrNetwork, err)
	}

	if len(output.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", llm.ErrInvalidResponse)
	}

	choice := output.Choices[0]
	return &llm.Response{
		Content:          choice.Message.Content,
		StopReason:       choice.FinishReason,
		PromptTokens:     int(output.Usage.PromptTokens),
		CompletionTokens: int(output.Usage.CompletionTokens),
		TotalTokens:      int(output.Usage.TotalTokens),
	}, nil
}
