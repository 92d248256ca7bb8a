// Package httpserver provides the HTTP/HTTPS server for GravSweep.
package httpserver

import (
	"net/http"

	"github.com/gravsweep/gravsweep-go/internal/core/eval"
	"github.com/gravsweep/gravsweep-go/internal/server/httpserver/handler"
	"github.com/gravsweep/gravsweep-go/internal/telemetry/logger"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// Evaluator runs model evaluations and sweeps.
	Evaluator *eval.Evaluator

	// Runs reads persisted runs.
	Runs handler.RunReader

	// Metrics serves the Prometheus exposition endpoint. Nil disables
	// /metrics.
	Metrics http.Handler

	// Logger for request logging.
	Logger logger.Logger

	// CORSAllowedOrigins is the list of allowed CORS origins (empty = allow all).
	CORSAllowedOrigins []string

	// RateLimit is the per-IP request rate limit (requests/second).
	// Zero disables limiting.
	RateLimit float64

	// RateBurst is the per-IP burst allowance.
	RateBurst int

	// EnableAudit enables access logging for all requests.
	EnableAudit bool
}

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	h := handler.New(cfg.Evaluator, cfg.Runs, log)

	// Build middleware chain for the API handler
	// Order: Recover -> CORS -> RequestID -> RateLimit -> Audit -> Handler
	middlewares := []Middleware{
		Recover(log),
	}
	if len(cfg.CORSAllowedOrigins) > 0 {
		middlewares = append(middlewares, CORS(cfg.CORSAllowedOrigins))
	}
	middlewares = append(middlewares, RequestID())
	if cfg.RateLimit > 0 {
		middlewares = append(middlewares, RateLimit(cfg.RateLimit, cfg.RateBurst))
	}
	if cfg.EnableAudit {
		middlewares = append(middlewares, Audit(log))
	}

	apiHandler := Chain(h, middlewares...)

	mux := http.NewServeMux()

	// Health endpoints skip rate limiting and audit
	probeHandler := Chain(h, Recover(log), RequestID())
	mux.Handle("GET /health", probeHandler)
	mux.Handle("GET /ready", probeHandler)

	// Metrics endpoint uses Prometheus exposition format, not the JSON
	// envelope
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", Chain(cfg.Metrics, Recover(log), RequestID()))
	}

	// Model endpoints
	mux.Handle("GET /v1/models", apiHandler)
	mux.Handle("GET /v1/models/{id}", apiHandler)

	// Evaluation endpoints
	mux.Handle("POST /v1/evaluate", apiHandler)
	mux.Handle("POST /v1/sweeps", apiHandler)

	// Run endpoints
	mux.Handle("GET /v1/runs", apiHandler)
	mux.Handle("GET /v1/runs/{id}", apiHandler)

	return mux
}

// DefaultRouterConfig returns default router configuration.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		RateBurst:   16,
		EnableAudit: true,
	}
}
