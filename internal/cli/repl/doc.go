// Package repl provides interactive mode for gravsweep-cli.
//
// This package implements the Read-Eval-Print Loop for interactive
// sessions:
//
//   - repl.go: Main REPL loop and command dispatch
//   - completer.go: Prefix completion for commands
//   - history.go: Command history persistence
package repl
