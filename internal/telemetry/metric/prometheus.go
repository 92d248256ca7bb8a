// Package metric provides Prometheus metrics for GravSweep.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// namespace is the prefix for all GravSweep metrics.
const namespace = "gravsweep"

// promCounterVec adapts prometheus.CounterVec to CounterVec.
type promCounterVec struct {
	vec *prometheus.CounterVec
}

func (v promCounterVec) WithLabelValues(lvs ...string) Counter {
	return v.vec.WithLabelValues(lvs...)
}

// promHistogramVec adapts prometheus.HistogramVec to HistogramVec.
type promHistogramVec struct {
	vec *prometheus.HistogramVec
}

func (v promHistogramVec) WithLabelValues(lvs ...string) Histogram {
	return v.vec.WithLabelValues(lvs...)
}

// NewRegistry creates the application metrics backed by a dedicated
// Prometheus registry. The returned prometheus.Registry serves the
// /metrics endpoint via Handler.
func NewRegistry() (*Registry, *prometheus.Registry) {
	promReg := prometheus.NewRegistry()
	factory := func(opts prometheus.CounterOpts) prometheus.Counter {
		c := prometheus.NewCounter(opts)
		promReg.MustRegister(c)
		return c
	}

	evaluations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "evaluations_total",
		Help:      "Total metric evaluations, by model ID.",
	}, []string{"model"})
	promReg.MustRegister(evaluations)

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "evaluation_duration_seconds",
		Help:      "Metric evaluation latency, by model ID.",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
	}, []string{"model"})
	promReg.MustRegister(duration)

	storeSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "store_size_bytes",
		Help:      "Approximate on-disk size of the run store.",
	})
	promReg.MustRegister(storeSize)

	return &Registry{
		EvaluationsTotal: promCounterVec{evaluations},
		EvalDuration:     promHistogramVec{duration},
		EvalPoints: factory(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluation_points_total",
			Help:      "Total grid points evaluated.",
		}),
		CacheHits: factory(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Evaluation cache hits.",
		}),
		CacheMisses: factory(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Evaluation cache misses.",
		}),
		SweepsTotal: factory(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweeps_total",
			Help:      "Parameter sweeps executed.",
		}),
		SweepVariants: factory(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_variants_total",
			Help:      "Model variants evaluated by sweeps.",
		}),
		RunsStored: factory(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_stored_total",
			Help:      "Evaluation runs persisted to the store.",
		}),
		StoreSize: storeSize,
	}, promReg
}

// NewNopRegistry creates a Registry whose instruments discard all
// observations. Useful for tests and the CLI.
func NewNopRegistry() *Registry {
	reg, _ := NewRegistry()
	return reg
}

// Handler returns the HTTP handler for the /metrics endpoint.
func Handler(promReg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})
}
