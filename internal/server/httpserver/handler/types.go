// Package handler provides HTTP request handlers for GravSweep.
package handler

import (
	"time"

	"github.com/gravsweep/gravsweep-go/internal/core/eval"
	"github.com/gravsweep/gravsweep-go/internal/core/metric"
	"github.com/gravsweep/gravsweep-go/pkg/grid"
)

// Response is the standard API response envelope.
// All JSON responses use this format (except /metrics which uses Prometheus format).
type Response struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp int64  `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
	Details   any    `json:"details,omitempty"` // Additional error details
}

// NewResponse creates a success response.
func NewResponse(requestID string, data any) *Response {
	return &Response{
		Code:      "OK",
		Message:   "Success",
		RequestID: requestID,
		Timestamp: time.Now().UnixMilli(),
		Data:      data,
	}
}

// NewErrorResponse creates an error response.
func NewErrorResponse(requestID, code, message string, details any) *Response {
	return &Response{
		Code:      code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now().UnixMilli(),
		Details:   details,
	}
}

// ListModelsResponse is the response body for GET /v1/models.
type ListModelsResponse struct {
	Models []metric.Info `json:"models"`
	Total  int           `json:"total"`
}

// EvaluateRequest is the request body for POST /v1/evaluate.
type EvaluateRequest struct {
	ModelID string        `json:"model_id"`
	Alpha   *float64      `json:"alpha,omitempty"`
	Grid    grid.Spec     `json:"grid"`
	Params  metric.Params `json:"params"`
}

// SweepRequest is the request body for POST /v1/sweeps.
type SweepRequest struct {
	ModelID string        `json:"model_id"`
	Grid    grid.Spec     `json:"grid"`
	Params  metric.Params `json:"params"`
}

// RunSummary represents a run in list responses, without the component
// payload.
type RunSummary struct {
	ID        string    `json:"id"`
	ModelID   string    `json:"model_id"`
	ModelName string    `json:"model_name"`
	Alpha     float64   `json:"alpha"`
	SweepID   string    `json:"sweep_id,omitempty"`
	Points    int       `json:"points"`
	FromCache bool      `json:"from_cache"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRunSummary builds a RunSummary from a stored run.
func NewRunSummary(run *eval.Run) RunSummary {
	return RunSummary{
		ID:        run.ID,
		ModelID:   run.ModelID,
		ModelName: run.ModelName,
		Alpha:     run.Alpha,
		SweepID:   run.SweepID,
		Points:    run.Components.Len(),
		FromCache: run.FromCache,
		CreatedAt: run.CreatedAt,
	}
}

// ListRunsResponse is the response body for GET /v1/runs.
type ListRunsResponse struct {
	Items []RunSummary `json:"items"`
	Total int          `json:"total"`
}
