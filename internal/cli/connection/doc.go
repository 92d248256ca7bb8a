// Package connection provides the HTTP API client for GravSweep CLI.
//
// The Client wraps the server's REST endpoints with typed methods and
// unwraps the standard JSON response envelope. Errors carry the
// server's structured error code.
package connection
