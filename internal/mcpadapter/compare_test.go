package mcpadapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/llm"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/prechecks"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/setup"
	"github.com/rs/zerolog"
)

type stubGenerator struct{}

func (stubGenerator) Generate(_ context.Context, request llm.Request) (*llm.Response, error) {
	if request.HasSystemPrompt() {
		return &llm.Response{Content: "a longer and more detailed answer", StopReason: "STOP", CompletionTokens: 30}, nil
	}
	return &llm.Response{Content: "short answer", StopReason: "STOP", CompletionTokens: 10}, nil
}

func (stubGenerator) Name() string  { return "stub" }
func (stubGenerator) Model() string { return "stub-model" }

func newTestDeps(t *testing.T) *setup.Dependencies {
	t.Helper()

	logger := zerolog.Nop()
	deps, err := setup.Build(&setup.Config{RequestTimeout: time.Second}, stubGenerator{}, &logger)
	if err != nil {
		t.Fatalf("failed to wire: %v", err)
	}
	return deps
}

func TestComparePrompts(t *testing.T) {
	deps := newTestDeps(t)

	_, result, err := ComparePrompts(context.Background(), deps.Executor, nil, CompareInput{
		RequestID:    "mcp-001",
		UserPrompt:   "What is Go?",
		SystemPrompt: "Answer in depth.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RequestID != "mcp-001" {
		t.Errorf("expected mcp-001, got %s", result.RequestID)
	}
	if result.MoreDetailed != models.SideWithSystem {
		t.Errorf("expected with_system more detailed, got %q", result.MoreDetailed)
	}
}

func TestComparePrompts_EmptyPrompt(t *testing.T) {
	deps := newTestDeps(t)

	_, _, err := ComparePrompts(context.Background(), deps.Executor, nil, CompareInput{UserPrompt: ""})
	if !errors.Is(err, prechecks.ErrInvalidPrompt) {
		t.Fatalf("expected ErrInvalidPrompt, got %v", err)
	}
}

func TestServer_CallTool(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	server := NewServer(deps.Executor, "test")
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	defer session.Close()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: ToolName,
		Arguments: map[string]any{
			"user_prompt":   "What is Go?",
			"system_prompt": "Answer in depth.",
		},
	})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %+v", res.Content)
	}

	structured, ok := res.StructuredContent.(map[string]any)
	if !ok {
		t.Fatalf("expected structured content, got %T", res.StructuredContent)
	}
	if structured["more_detailed"] != string(models.SideWithSystem) {
		t.Errorf("expected with_system more detailed, got %v", structured["more_detailed"])
	}
}
