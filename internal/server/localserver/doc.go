// Package localserver serves the HTTP API over a Unix domain socket.
//
// This gives local tooling a TCP-free path to the same API the HTTP
// server exposes. File system permissions on the socket control
// access.
package localserver
