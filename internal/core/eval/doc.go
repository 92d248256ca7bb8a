// Package eval provides the evaluation services for GravSweep.
//
// The Evaluator orchestrates a single model evaluation: registry lookup,
// cache probe, pure metric computation, persistence, and telemetry. The
// sweep runner expands a model's declared sweep range into variants and
// evaluates them on a bounded, rate-limited worker pool.
//
// Models stay pure: caching and sweeping live entirely here, keyed on the
// declarative metadata (Cacheable, SweepRange) the models expose.
package eval
