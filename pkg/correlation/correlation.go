// Package correlation carries a per-request correlation id through context so
// log lines from one request can be stitched together.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

// HeaderName is the inbound and outbound HTTP header for the correlation id.
const HeaderName = "X-Correlation-ID"

type contextKey struct{}

// FromContext returns the correlation id, or "" when the context has none.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func NewID() string {
	return uuid.New().String()
}
