// Package logger provides structured logging for GravSweep.
//
// The package wraps log/slog behind a small Logger interface:
//
//   - logger.go: handler configuration and the global default logger
//   - context.go: context-aware logging with request ID propagation
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering with runtime adjustment
//   - Context propagation for request tracing
package logger
