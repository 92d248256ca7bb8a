// Package handler provides HTTP request handlers for GravSweep.
package handler

import (
	"net/http"

	"github.com/gravsweep/gravsweep-go/internal/core/metric"
)

// handleListModels handles GET /v1/models.
func (h *Handler) handleListModels(w http.ResponseWriter, r *http.Request) {
	models := metric.List(h.evaluator.Context())
	h.writeJSON(w, r, http.StatusOK, ListModelsResponse{
		Models: models,
		Total:  len(models),
	})
}

// handleGetModel handles GET /v1/models/{id}.
func (h *Handler) handleGetModel(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.handleServiceError(w, r, metric.ErrMissingArgument.WithDetails("model id is required"))
		return
	}

	for _, info := range metric.List(h.evaluator.Context()) {
		if info.ID == id {
			h.writeJSON(w, r, http.StatusOK, info)
			return
		}
	}

	h.handleServiceError(w, r, metric.ErrModelNotFound.WithDetails(id))
}
