// Package shutdown provides graceful shutdown for GravSweep.
//
// A Handler collects cleanup hooks while the server wires itself up,
// then Wait blocks until SIGINT or SIGTERM and runs them most recent
// first under a shared timeout.
//
// Usage:
//
//	h := shutdown.NewHandler(30 * time.Second)
//	h.OnShutdown(func(context.Context) error { return store.Close() })
//	h.OnShutdown(httpServer.Shutdown)
//	if err := h.Wait(); err != nil {
//		log.Error("shutdown", "error", err)
//	}
package shutdown
