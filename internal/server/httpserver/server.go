package httpserver

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"
)

// Default timeouts protect the server from slow or stalled clients.
// Sweep evaluation is CPU-bound and can legitimately take a while, so
// the write timeout is generous.
const (
	defaultReadHeaderTimeout = 5 * time.Second
	defaultReadTimeout       = 30 * time.Second
	defaultWriteTimeout      = 120 * time.Second
	defaultIdleTimeout       = 90 * time.Second
)

// Server wraps http.Server with GravSweep's timeout and TLS defaults.
type Server struct {
	httpServer *http.Server
	certFile   string
	keyFile    string
}

// Option configures a Server.
type Option func(*Server)

// WithTLS makes Run serve HTTPS using the given certificate pair.
func WithTLS(certFile, keyFile string) Option {
	return func(s *Server) {
		s.certFile = certFile
		s.keyFile = keyFile
	}
}

// WithWriteTimeout overrides the response write deadline, for
// deployments running very large sweep grids.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.httpServer.WriteTimeout = d
	}
}

// New creates a server for the given address and handler.
func New(addr string, handler http.Handler, opts ...Option) *Server {
	s := &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			ReadTimeout:       defaultReadTimeout,
			WriteTimeout:      defaultWriteTimeout,
			IdleTimeout:       defaultIdleTimeout,
			TLSConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// TLSEnabled reports whether Run will serve HTTPS.
func (s *Server) TLSEnabled() bool {
	return s.certFile != "" && s.keyFile != ""
}

// Run starts serving, over TLS when a certificate pair was configured.
// It blocks until Shutdown is called or the listener fails.
func (s *Server) Run() error {
	if s.TLSEnabled() {
		return s.httpServer.ListenAndServeTLS(s.certFile, s.keyFile)
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting new connections and drains in-flight
// requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
