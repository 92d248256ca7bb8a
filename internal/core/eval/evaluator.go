// Package eval provides the evaluation services for GravSweep.
package eval

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/gravsweep/gravsweep-go/internal/core/metric"
	"github.com/gravsweep/gravsweep-go/internal/telemetry/logger"
	telemetry "github.com/gravsweep/gravsweep-go/internal/telemetry/metric"
	"github.com/gravsweep/gravsweep-go/pkg/grid"
)

// Default configuration values.
const (
	DefaultCacheSize = 1024
	DefaultWorkers   = 4
)

// Config configures the Evaluator.
type Config struct {
	// Epsilon is the numeric-stability constant passed to model
	// construction. Zero means metric.DefaultEpsilon.
	Epsilon float64

	// CacheSize is the maximum number of cached evaluations.
	CacheSize int

	// Workers bounds sweep concurrency.
	Workers int

	// RateLimit caps evaluations per second during sweeps.
	// Zero means unlimited.
	RateLimit float64

	// Store persists runs. Nil disables persistence.
	Store RunStore

	// Metrics receives telemetry. Nil disables it.
	Metrics *telemetry.Registry

	// Logger is the structured logger.
	Logger logger.Logger
}

// Request describes a single evaluation.
type Request struct {
	// ModelID selects the registered model family.
	ModelID string `json:"model_id"`

	// Alpha overrides the family's default free parameter. Nil keeps
	// the default.
	Alpha *float64 `json:"alpha,omitempty"`

	// Grid is the radial grid to evaluate on.
	Grid grid.Spec `json:"grid"`

	// Params are the physical parameters.
	Params metric.Params `json:"params"`
}

// Evaluator orchestrates model evaluation: registry lookup, cache probe,
// computation, persistence, telemetry. It is safe for concurrent use.
type Evaluator struct {
	numCtx  metric.Context
	cache   *componentCache
	store   RunStore
	metrics *telemetry.Registry
	log     logger.Logger
	limiter *rate.Limiter
	workers int
}

// New creates an Evaluator.
func New(cfg Config) (*Evaluator, error) {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.Store == nil {
		cfg.Store = NopStore{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = telemetry.NewNopRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}

	cache, err := newComponentCache(cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RateLimit > 0 {
		burst := cfg.Workers
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Evaluator{
		numCtx:  metric.Context{Epsilon: cfg.Epsilon},
		cache:   cache,
		store:   cfg.Store,
		metrics: cfg.Metrics,
		log:     cfg.Logger,
		limiter: limiter,
		workers: cfg.Workers,
	}, nil
}

// Context returns the numeric context models are built with.
func (e *Evaluator) Context() metric.Context {
	return e.numCtx
}

// Evaluate runs a single evaluation and persists the result.
func (e *Evaluator) Evaluate(ctx context.Context, req Request) (*Run, error) {
	return e.evaluate(ctx, req, "")
}

func (e *Evaluator) evaluate(ctx context.Context, req Request, sweepID string) (*Run, error) {
	model, err := metric.Build(req.ModelID, e.numCtx, req.Alpha)
	if err != nil {
		return nil, err
	}

	r, err := req.Grid.Build()
	if err != nil {
		return nil, metric.ErrInvalidArgument.WithDetails(err.Error()).WithCause(err)
	}

	start := time.Now()
	comps, fromCache := e.components(model, r, req.Params)
	elapsed := time.Since(start)

	e.metrics.EvaluationsTotal.WithLabelValues(req.ModelID).Inc()
	e.metrics.EvalDuration.WithLabelValues(req.ModelID).Observe(elapsed.Seconds())
	e.metrics.EvalPoints.Add(float64(len(r)))

	id, err := NewRunID()
	if err != nil {
		return nil, err
	}

	run := &Run{
		ID:         id,
		ModelID:    req.ModelID,
		ModelName:  model.Name(),
		Alpha:      effectiveAlpha(req),
		SweepID:    sweepID,
		Grid:       req.Grid,
		Params:     req.Params,
		Components: comps,
		FromCache:  fromCache,
		CreatedAt:  time.Now().UTC(),
	}

	if err := e.store.Put(ctx, run); err != nil {
		return nil, metric.ErrStorage.WithCause(err)
	}
	e.metrics.RunsStored.Inc()

	e.log.Debug("evaluation complete",
		"run_id", run.ID,
		"model", run.ModelName,
		"points", len(r),
		"from_cache", fromCache,
		"elapsed", elapsed)

	return run, nil
}

// components computes or recalls the metric components.
func (e *Evaluator) components(model metric.Model, r []float64, p metric.Params) (metric.Components, bool) {
	if !model.Cacheable() {
		return model.Metric(r, p), false
	}

	key := e.cache.key(model.Name(), r, p)
	if comps, ok := e.cache.get(key); ok {
		e.metrics.CacheHits.Inc()
		return comps, true
	}

	comps := model.Metric(r, p)
	e.cache.add(key, comps)
	e.metrics.CacheMisses.Inc()
	return comps, false
}

// CacheLen returns the current number of cached evaluations.
func (e *Evaluator) CacheLen() int {
	return e.cache.len()
}

// effectiveAlpha resolves the alpha a request evaluated with.
func effectiveAlpha(req Request) float64 {
	if req.Alpha != nil {
		return *req.Alpha
	}
	if spec, err := metric.Lookup(req.ModelID); err == nil {
		return spec.DefaultAlpha
	}
	return 0
}
