// Package main provides the entry point for gravsweep-server.
//
// The server is the core GravSweep service that provides:
//
//   - HTTP/HTTPS API for metric evaluation, sweeps, and run retrieval
//   - Persistent run storage with background garbage collection
//   - Prometheus metrics endpoint
//   - Local Unix socket for management access
//
// Usage:
//
//	gravsweep-server [flags]
//	gravsweep-server --config /path/to/config.yaml
//
// The server loads configuration, initializes infrastructure
// components, and starts all configured listeners. The log level
// reloads in place when the config file changes.
package main
