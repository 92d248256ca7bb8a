// Package metric defines the spacetime metric models for GravSweep.
//
// A metric model is a pure function family: given a radial coordinate grid
// and the physical parameters (mass, speed of light, gravitational
// constant), it produces the four metric component arrays describing a
// static, spherically symmetric spacetime. Models carry declarative
// metadata (display name, cacheability, optional sweep range) that the
// evaluation layer reads; models themselves never cache, sweep, or perform
// I/O.
//
// The package contains:
//
//   - model.go: the Model interface and shared value types
//   - context.go: the numeric evaluation context
//   - schwarzschild.go, torsional.go, quadratic.go, reissner.go: builtins
//   - registry.go: the model registry keyed by stable IDs
//   - errors.go: structured domain errors
package metric
