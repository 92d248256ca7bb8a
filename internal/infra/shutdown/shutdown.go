package shutdown

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Handler runs registered cleanup hooks when the process receives
// SIGINT or SIGTERM.
type Handler struct {
	timeout time.Duration
	done    chan struct{}
	once    sync.Once

	mu    sync.Mutex
	hooks []func(context.Context) error
}

// NewHandler creates a shutdown handler. timeout bounds the total time
// the hooks get to finish.
func NewHandler(timeout time.Duration) *Handler {
	return &Handler{
		timeout: timeout,
		done:    make(chan struct{}),
	}
}

// OnShutdown registers a cleanup hook. Hooks run in reverse
// registration order, so dependencies registered first are torn down
// last.
func (h *Handler) OnShutdown(hook func(context.Context) error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// Wait blocks until SIGINT or SIGTERM arrives, then runs the hooks.
func (h *Handler) Wait() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	return h.Run()
}

// Run executes the hooks immediately, most recent first, under the
// shared timeout. Every hook runs even when earlier ones fail; the
// last error wins.
func (h *Handler) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	h.mu.Lock()
	hooks := append([]func(context.Context) error(nil), h.hooks...)
	h.mu.Unlock()

	var lastErr error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i](ctx); err != nil {
			lastErr = err
		}
	}

	h.once.Do(func() { close(h.done) })
	return lastErr
}

// Done returns a channel that closes once the hooks have run.
func (h *Handler) Done() <-chan struct{} {
	return h.done
}
