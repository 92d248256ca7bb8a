// Package handler provides HTTP request handlers for GravSweep.
//
// This package implements the HTTP API endpoints for model listing,
// metric evaluation, parameter sweeps, and run retrieval.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gravsweep/gravsweep-go/internal/core/eval"
	"github.com/gravsweep/gravsweep-go/internal/core/metric"
	"github.com/gravsweep/gravsweep-go/internal/telemetry/logger"
)

// RunReader reads persisted runs. Implemented by storage.Store.
type RunReader interface {
	Get(ctx context.Context, id string) (*eval.Run, error)
	List(ctx context.Context, limit int) ([]*eval.Run, error)
	Count(ctx context.Context) (int, error)
}

// Handler is the main HTTP handler that routes requests to appropriate handlers.
type Handler struct {
	evaluator *eval.Evaluator
	runs      RunReader
	log       logger.Logger
	mux       *http.ServeMux
}

// New creates a new Handler.
func New(evaluator *eval.Evaluator, runs RunReader, log logger.Logger) *Handler {
	h := &Handler{
		evaluator: evaluator,
		runs:      runs,
		log:       log,
		mux:       http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes.
func (h *Handler) registerRoutes() {
	// Health endpoints
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("GET /ready", h.handleReady)

	// Model endpoints
	h.mux.HandleFunc("GET /v1/models", h.handleListModels)
	h.mux.HandleFunc("GET /v1/models/{id}", h.handleGetModel)

	// Evaluation endpoints
	h.mux.HandleFunc("POST /v1/evaluate", h.handleEvaluate)
	h.mux.HandleFunc("POST /v1/sweeps", h.handleSweep)

	// Run endpoints
	h.mux.HandleFunc("GET /v1/runs", h.handleListRuns)
	h.mux.HandleFunc("GET /v1/runs/{id}", h.handleGetRun)
}

// writeJSON writes a JSON response with standard envelope format.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	requestID := getRequestID(r)
	response := NewResponse(requestID, data)

	w.Header().Set("Content-Type", "application/json")
	if requestID != "" {
		w.Header().Set("X-Request-ID", requestID)
	}
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("failed to encode response", "error", err)
	}
}

// writeError writes an error response with standard envelope format.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, details any) {
	requestID := getRequestID(r)
	response := NewErrorResponse(requestID, code, message, details)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", code)
	if requestID != "" {
		w.Header().Set("X-Request-ID", requestID)
	}
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// getRequestID returns the request ID assigned by middleware. The
// middleware stores it in the request context; the header fallback
// covers handlers invoked without the middleware chain.
func getRequestID(r *http.Request) string {
	if id := logger.RequestIDFromContext(r.Context()); id != "" {
		return id
	}
	return r.Header.Get("X-Request-ID")
}

// handleServiceError converts domain errors to HTTP responses.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if metric.IsDomainError(err, "") {
		code := metric.GetErrorCode(err)
		status := errorCodeToHTTPStatus(code)
		h.writeError(w, r, status, code, err.Error(), nil)
		return
	}

	// Generic internal error
	h.log.Error("internal error", "error", err)
	h.writeError(w, r, http.StatusInternalServerError, "GS-SYS-5000", "internal server error", nil)
}

// errorCodeToHTTPStatus maps error codes to HTTP status codes.
func errorCodeToHTTPStatus(code string) int {
	switch {
	case strings.HasSuffix(code, "-4040"), strings.HasSuffix(code, "-4041"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "-4090"), strings.HasSuffix(code, "-4091"):
		return http.StatusConflict
	case strings.HasSuffix(code, "-4290"):
		return http.StatusTooManyRequests
	case strings.HasPrefix(code, "GS-ARG-"):
		return http.StatusBadRequest
	case strings.HasPrefix(code, "GS-SYS-5"):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
