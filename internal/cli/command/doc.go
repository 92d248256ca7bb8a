// Package command provides CLI command definitions for GravSweep.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: Root command and global flags
//   - models.go: Model catalog subcommand group
//   - eval.go: Single-model evaluation
//   - sweep.go: Parameter sweep across a model's declared range
//   - runs.go: Run inspection and sealed export
//   - system.go: Health check and build information
//
// Commands follow a consistent pattern of parsing flags, calling the
// server through the connection client, and formatting output.
package command
