package api

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/executor"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
	"github.com/povarna/generative-ai-agents/prompt-compare/internal/prechecks"
	"github.com/rs/zerolog"
)

const apiVersion = "1.0.0"

type HealthResponse struct {
	Status   string `json:"status" description:"Service status"`
	Version  string `json:"version" description:"API version"`
	Provider string `json:"provider" description:"Configured LLM provider"`
	Model    string `json:"model" description:"Model ID used for both calls"`
}

type Handler struct {
	executor *executor.Executor
	provider string
	model    string
	logger   *zerolog.Logger
}

func NewHandler(executor *executor.Executor, provider string, model string, logger *zerolog.Logger) *Handler {
	return &Handler{
		executor: executor,
		provider: provider,
		model:    model,
		logger:   logger,
	}
}

// POST /api/v1/compare
// Body: CompareRequest
// Returns: ComparisonResult
func (h *Handler) Compare(req *restful.Request, resp *restful.Response) {
	var compareRequest models.CompareRequest
	if err := req.ReadEntity(&compareRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("request_id", compareRequest.RequestID).
		Bool("has_system_prompt", compareRequest.SystemPrompt != "").
		Msg("Start comparison")

	result, err := h.executor.Execute(req.Request.Context(), compareRequest)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, prechecks.ErrInvalidPrompt) {
			status = http.StatusBadRequest
		}
		middleware.HandleError(resp, err, status)
		return
	}

	h.logger.Info().
		Str("request_id", result.RequestID).
		Str("verdict_kind", string(result.VerdictKind)).
		Msg("Comparison complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:   "ok",
		Version:  apiVersion,
		Provider: h.provider,
		Model:    h.model,
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}
