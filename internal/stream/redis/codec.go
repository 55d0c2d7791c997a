package redis

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
)

const (
	FieldPayload   = "payload"
	FieldRequestID = "request_id"
	FieldError     = "error"
)

var ErrMissingPayload = errors.New("missing payload field")

// DecodeRequest extracts the CompareRequest carried in a stream entry.
func DecodeRequest(values map[string]any) (models.CompareRequest, error) {
	var req models.CompareRequest

	payload, ok := values[FieldPayload].(string)
	if !ok {
		return req, ErrMissingPayload
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return req, fmt.Errorf("decode payload: %w", err)
	}
	return req, nil
}

func EncodeRequest(req models.CompareRequest) (map[string]any, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	values := map[string]any{FieldPayload: string(data)}
	if req.RequestID != "" {
		values[FieldRequestID] = req.RequestID
	}
	return values, nil
}

func EncodeResult(result models.ComparisonResult) (map[string]any, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return map[string]any{
		FieldRequestID: result.RequestID,
		FieldPayload:   string(data),
	}, nil
}

// EncodeRejection is published when a request never reached the model.
func EncodeRejection(requestID string, cause error) map[string]any {
	return map[string]any{
		FieldRequestID: requestID,
		FieldError:     cause.Error(),
	}
}
