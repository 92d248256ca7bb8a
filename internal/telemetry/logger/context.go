package logger

import "context"

// contextKey keeps this package's context values collision-free.
type contextKey string

const requestIDKey contextKey = "gravsweep.request_id"

// WithRequestID stores a request ID in the context. The HTTP
// middleware sets it; handlers read it back for response envelopes.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the stored request ID, or "".
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
