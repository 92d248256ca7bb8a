package handler

import (
	"net/http"
	"time"
)

// handleHealth handles GET /health. Liveness only: the process is up.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleReady handles GET /ready. Readiness additionally requires the
// run store to answer, so a node with a wedged badger volume drops out
// of the load balancer instead of failing sweeps.
func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if _, err := h.runs.Count(r.Context()); err != nil {
		h.log.Error("readiness check failed", "error", err)
		h.writeError(w, r, http.StatusServiceUnavailable, "GS-SYS-5001", "run store unavailable", nil)
		return
	}
	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
