// Package metric provides Prometheus metrics for GravSweep.
//
// It exposes evaluation counts, cache effectiveness, sweep activity, and
// evaluation latency in Prometheus format:
//
//   - metric.go: the instrument interfaces and the Registry
//   - prometheus.go: client_golang-backed construction and the /metrics handler
package metric
