package localserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"time"
)

// Server serves an http.Handler on a Unix domain socket.
type Server struct {
	path    string
	handler http.Handler
	httpSrv *http.Server
}

// New creates a new local server for the given socket path.
func New(socketPath string, handler http.Handler) *Server {
	return &Server{
		path:    socketPath,
		handler: handler,
	}
}

// Path returns the socket path.
func (s *Server) Path() string {
	return s.path
}

// ListenAndServe binds the socket and serves until Shutdown. A stale
// socket file from an unclean exit is removed before binding.
func (s *Server) ListenAndServe() error {
	if err := s.removeStaleSocket(); err != nil {
		return err
	}

	listener, err := net.Listen("unix", s.path)
	if err != nil {
		return err
	}
	if err := os.Chmod(s.path, 0600); err != nil {
		listener.Close()
		return err
	}

	s.httpSrv = &http.Server{
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	err = s.httpSrv.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully shuts down the server and removes the socket
// file.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}

	err := s.httpSrv.Shutdown(ctx)
	if removeErr := os.Remove(s.path); removeErr != nil && !os.IsNotExist(removeErr) && err == nil {
		err = removeErr
	}
	return err
}

// removeStaleSocket deletes a leftover socket file if nothing is
// listening on it.
func (s *Server) removeStaleSocket() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}

	conn, err := net.DialTimeout("unix", s.path, time.Second)
	if err == nil {
		conn.Close()
		return errors.New("localserver: socket already in use: " + s.path)
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
