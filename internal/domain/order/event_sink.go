package order

import (
	"context"
	"time"
)

//go:generate mockgen -source event_sink.go -destination mock_event_sink.go -package order

// Event is an order status transition flattened for the audit index.
type Event struct {
	OrderID string    `json:"order_id"`
	From    Status    `json:"from"`
	To      Status    `json:"to"`
	ActorID string    `json:"actor_id"`
	Note    *string   `json:"note,omitempty"`
	At      time.Time `json:"at"`
}

// EventSink receives transition events after they commit. Best-effort:
// failures are logged, never surfaced to the caller.
type EventSink interface {
	RecordTransition(ctx context.Context, e Event) error
}
