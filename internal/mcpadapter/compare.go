package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/executor"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
)

const ToolName = "compare_prompts"

// CompareInput is the MCP tool input schema (matches HTTP API field names).
type CompareInput struct {
	RequestID    string `json:"request_id,omitempty" jsonschema:"optional request identifier, generated when empty"`
	UserPrompt   string `json:"user_prompt" jsonschema:"user query sent on both calls"`
	SystemPrompt string `json:"system_prompt,omitempty" jsonschema:"system instruction used on the second call"`
}

// NewCompareHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewCompareHandler(exec *executor.Executor) func(context.Context, *mcp.CallToolRequest, CompareInput) (*mcp.CallToolResult, models.ComparisonResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CompareInput) (*mcp.CallToolResult, models.ComparisonResult, error) {
		return ComparePrompts(ctx, exec, req, input)
	}
}

// ComparePrompts runs both generations and returns the comparison.
// Precheck failures are returned as tool errors.
func ComparePrompts(
	ctx context.Context,
	exec *executor.Executor,
	req *mcp.CallToolRequest,
	input CompareInput,
) (*mcp.CallToolResult, models.ComparisonResult, error) {
	result, err := exec.Execute(ctx, models.CompareRequest{
		RequestID:    input.RequestID,
		UserPrompt:   input.UserPrompt,
		SystemPrompt: input.SystemPrompt,
	})
	if err != nil {
		return nil, models.ComparisonResult{}, err
	}

	return nil, result, nil
}

// NewServer builds an MCP server exposing the comparison tool.
func NewServer(exec *executor.Executor, version string) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "prompt-compare",
			Version: version,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolName,
		Description: "Generate a response to the user prompt with and without the system prompt and compare length, token usage and detail",
	}, NewCompareHandler(exec))

	return server
}
