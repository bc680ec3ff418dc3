// Package context carries request-scoped values between transport and
// application layers without those layers importing each other. The only
// value today is the request id that the HTTP middleware mints (or accepts
// from the caller) and that the logger stamps on every line.
package context

import "context"

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID attaches the request id for downstream log correlation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID returns the attached request id, or "" outside a request
// scope. Callers treat the empty string as "nothing to correlate".
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
