// Package handler provides HTTP request handlers for GravSweep.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gravsweep/gravsweep-go/internal/core/eval"
	"github.com/gravsweep/gravsweep-go/internal/core/metric"
)

// handleEvaluate handles POST /v1/evaluate.
func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceError(w, r, metric.ErrInvalidArgument.WithDetails("invalid request body").WithCause(err))
		return
	}
	if req.ModelID == "" {
		h.handleServiceError(w, r, metric.ErrMissingArgument.WithDetails("model_id is required"))
		return
	}

	run, err := h.evaluator.Evaluate(r.Context(), eval.Request{
		ModelID: req.ModelID,
		Alpha:   req.Alpha,
		Grid:    req.Grid,
		Params:  req.Params,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, run)
}

// handleSweep handles POST /v1/sweeps.
func (h *Handler) handleSweep(w http.ResponseWriter, r *http.Request) {
	var req SweepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceError(w, r, metric.ErrInvalidArgument.WithDetails("invalid request body").WithCause(err))
		return
	}
	if req.ModelID == "" {
		h.handleServiceError(w, r, metric.ErrMissingArgument.WithDetails("model_id is required"))
		return
	}

	summary, err := h.evaluator.Sweep(r.Context(), eval.SweepRequest{
		ModelID: req.ModelID,
		Grid:    req.Grid,
		Params:  req.Params,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, summary)
}
