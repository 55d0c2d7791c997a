package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/api"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/llm"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/setup"
	"github.com/rs/zerolog"
)

// stubGenerator answers briefly without a system prompt and at length with one.
type stubGenerator struct{}

func (stubGenerator) Generate(_ context.Context, request llm.Request) (*llm.Response, error) {
	if request.HasSystemPrompt() {
		return &llm.Response{Content: strings.Repeat("detail ", 40), StopReason: "STOP", PromptTokens: 12, CompletionTokens: 80}, nil
	}
	return &llm.Response{Content: strings.Repeat("brief ", 25), StopReason: "STOP", PromptTokens: 6, CompletionTokens: 50}, nil
}

func (stubGenerator) Name() string  { return "stub" }
func (stubGenerator) Model() string { return "stub-model" }

func setupTestAPI(t *testing.T) *restful.Container {
	t.Helper()

	logger := zerolog.Nop()
	cfg := &setup.Config{RequestTimeout: 5 * time.Second, MaxPromptChars: 200}
	deps, err := setup.Build(cfg, stubGenerator{}, &logger)
	if err != nil {
		t.Fatalf("Failed to wire dependencies: %v", err)
	}

	handler := api.NewHandler(deps.Executor, deps.Generator.Name(), deps.Generator.Model(), &logger)
	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)
	api.RegisterOpenAPI(container)

	return container
}

func postCompare(t *testing.T, container *restful.Container, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/compare", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)
	return recorder
}

func TestAPI_Health(t *testing.T) {
	container := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", recorder.Code)
	}

	var response api.HealthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response.Status != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", response.Status)
	}
	if response.Provider != "stub" || response.Model != "stub-model" {
		t.Errorf("Unexpected provider info: %+v", response)
	}
}

func TestAPI_Compare_WithSystemPrompt(t *testing.T) {
	container := setupTestAPI(t)

	body, err := json.Marshal(models.CompareRequest{
		RequestID:    "test-001",
		UserPrompt:   "Explain quantum entanglement.",
		SystemPrompt: "You are a physics professor.",
	})
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}

	recorder := postCompare(t, container, body)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", recorder.Code, recorder.Body.String())
	}

	var result models.ComparisonResult
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if result.RequestID != "test-001" {
		t.Errorf("Expected ID 'test-001', got '%s'", result.RequestID)
	}
	if result.WithoutSystem.TokenCount != 50 || result.WithSystem.TokenCount != 80 {
		t.Errorf("Unexpected token counts: %d / %d", result.WithoutSystem.TokenCount, result.WithSystem.TokenCount)
	}
	if result.MoreDetailed != models.SideWithSystem {
		t.Errorf("Expected with_system to be more detailed, got %q", result.MoreDetailed)
	}
	if result.Verdict == "" {
		t.Error("Expected a verdict text")
	}
}

func TestAPI_Compare_WithoutSystemPrompt(t *testing.T) {
	container := setupTestAPI(t)

	recorder := postCompare(t, container, []byte(`{"user_prompt":"Explain quantum entanglement."}`))
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", recorder.Code, recorder.Body.String())
	}

	var result models.ComparisonResult
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if result.VerdictKind != models.VerdictNeutral {
		t.Errorf("Expected neutral verdict, got %s", result.VerdictKind)
	}
	if result.WithSystem.FinishReason != models.FinishReasonOther {
		t.Errorf("Expected OTHER for the skipped call, got %s", result.WithSystem.FinishReason)
	}
	if result.RequestID == "" {
		t.Error("Expected a generated request ID")
	}
}

func TestAPI_Compare_BadRequests(t *testing.T) {
	container := setupTestAPI(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"user_prompt":`},
		{name: "empty user prompt", body: `{"user_prompt":"   ","system_prompt":"be nice"}`},
		{name: "prompt too long", body: `{"user_prompt":"` + strings.Repeat("a", 201) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postCompare(t, container, []byte(tt.body))
			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d. Body: %s", recorder.Code, recorder.Body.String())
			}

			var errResp middleware.ErrorResponse
			if err := json.Unmarshal(recorder.Body.Bytes(), &errResp); err != nil {
				t.Fatalf("Failed to parse error response: %v", err)
			}
			if errResp.Code != http.StatusBadRequest || errResp.Message == "" {
				t.Errorf("Unexpected error response: %+v", errResp)
			}
		})
	}
}

func TestAPI_OpenAPIDocument(t *testing.T) {
	container := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, api.OpenAPIPath, nil)
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "/api/v1/compare") {
		t.Error("Expected the compare route in the OpenAPI document")
	}
}
