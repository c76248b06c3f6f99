// Package correlation carries a request-scoped correlation ID through
// handlers, gateway calls and published events.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

// HeaderName is used both for HTTP requests and for Kafka message headers.
const HeaderName = "X-Correlation-ID"

type contextKey struct{}

// FromContext returns the correlation ID stored in ctx, or "".
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// Ensure returns ctx unchanged when it already carries an ID,
// otherwise a child context with a fresh one.
func Ensure(ctx context.Context) (context.Context, string) {
	if id := FromContext(ctx); id != "" {
		return ctx, id
	}
	id := NewID()
	return WithID(ctx, id), id
}

// NewID generates a UUID v4.
func NewID() string {
	return uuid.New().String()
}
