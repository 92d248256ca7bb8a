// Package main provides the entry point for gravsweep-cli.
//
// The CLI tool provides command-line access to a GravSweep server for:
//
//   - Model discovery (list, info)
//   - Metric evaluation and alpha sweeps
//   - Run inspection and sealed archive export
//   - System health and version checks
//
// Usage:
//
//	gravsweep-cli [command] [flags]
//	gravsweep-cli models list --output json
//	gravsweep-cli eval einstein-final-torsional --alpha=-0.75
//
// The CLI supports both single-command mode and interactive REPL mode.
package main
