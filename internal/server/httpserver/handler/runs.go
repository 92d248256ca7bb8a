// Package handler provides HTTP request handlers for GravSweep.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gravsweep/gravsweep-go/internal/core/metric"
)

// DefaultListLimit caps GET /v1/runs when no limit is given.
const DefaultListLimit = 50

// handleListRuns handles GET /v1/runs.
func (h *Handler) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := DefaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.handleServiceError(w, r, metric.ErrInvalidArgument.WithDetails("limit must be a positive integer"))
			return
		}
		limit = n
	}

	runs, err := h.runs.List(r.Context(), limit)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	total, err := h.runs.Count(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	items := make([]RunSummary, 0, len(runs))
	for _, run := range runs {
		items = append(items, NewRunSummary(run))
	}

	h.writeJSON(w, r, http.StatusOK, ListRunsResponse{
		Items: items,
		Total: total,
	})
}

// handleGetRun handles GET /v1/runs/{id}.
func (h *Handler) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.handleServiceError(w, r, metric.ErrMissingArgument.WithDetails("run id is required"))
		return
	}

	run, err := h.runs.Get(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, run)
}
