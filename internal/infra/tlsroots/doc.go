// Package tlsroots provides TLS trust management for GravSweep.
//
// This package handles root certificate loading:
//
//   - roots.go: System certificates + custom CA loading
//
// The CLI uses it to trust private CAs when talking to a TLS-enabled
// gravsweep-server.
package tlsroots
