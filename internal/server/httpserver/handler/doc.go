// Package handler implements the GravSweep HTTP API endpoints.
//
// Endpoints:
//
//   - GET  /health, /ready: liveness and readiness probes
//   - GET  /v1/models: list registered metric models
//   - GET  /v1/models/{id}: inspect a single model
//   - POST /v1/evaluate: evaluate a model on a radial grid
//   - POST /v1/sweeps: run a parameter sweep
//   - GET  /v1/runs: list persisted runs (newest first)
//   - GET  /v1/runs/{id}: retrieve a run with components
//
// All JSON responses use the standard envelope in types.go. Domain
// errors map to HTTP statuses via their structured codes.
package handler
