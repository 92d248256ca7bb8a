// Package httpserver provides the HTTP/HTTPS server for GravSweep.
//
// This package implements the REST API server:
//
//   - server.go: HTTP server lifecycle (start, TLS, graceful shutdown)
//   - router.go: Route registration and middleware wiring
//   - middleware.go: Request ID, rate limiting, audit logging, panic
//     recovery, CORS
//
// The handler subpackage implements the individual endpoints.
package httpserver
