// Package metric provides Prometheus metrics for GravSweep.
package metric

// Counter is a cumulative metric that only increases.
type Counter interface {
	Inc()
	Add(float64)
}

// CounterVec is a Counter with labels.
type CounterVec interface {
	WithLabelValues(lvs ...string) Counter
}

// Gauge is a metric that can go up and down.
type Gauge interface {
	Set(float64)
	Inc()
	Dec()
	Add(float64)
	Sub(float64)
}

// Histogram samples observations and counts them in buckets.
type Histogram interface {
	Observe(float64)
}

// HistogramVec is a Histogram with labels.
type HistogramVec interface {
	WithLabelValues(lvs ...string) Histogram
}

// Registry holds all application metrics.
type Registry struct {
	// Evaluation metrics
	EvaluationsTotal CounterVec   // labels: model
	EvalDuration     HistogramVec // labels: model
	EvalPoints       Counter

	// Cache metrics
	CacheHits   Counter
	CacheMisses Counter

	// Sweep metrics
	SweepsTotal   Counter
	SweepVariants Counter

	// Storage metrics
	RunsStored Counter
	StoreSize  Gauge
}
