package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"soukcod/internal/domain/order"

	"github.com/google/uuid"
	"github.com/opensearch-project/opensearch-go"
)

var _ order.EventSink = (*EventSink)(nil)

// EventSink indexes order status transitions in OpenSearch for the ops audit
// trail. Writes are best-effort; services log failures and move on.
type EventSink struct {
	client *opensearch.Client
	index  string
}

func NewEventSink(ctx context.Context, urls []string, index string) (*EventSink, error) {
	if len(urls) == 0 {
		return nil, errors.New("no OpenSearch addresses configured")
	}

	cfg := opensearch.Config{
		Addresses: urls,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 10,
		},
	}
	client, err := opensearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("opensearch client: %w", err)
	}

	sink := &EventSink{client: client, index: index}
	if err := sink.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return sink, nil
}

func (s *EventSink) ensureIndex(ctx context.Context) error {
	res, err := s.client.Indices.Exists([]string{s.index}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("indices.exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"event_id":    map[string]any{"type": "keyword"},
				"order_id":    map[string]any{"type": "keyword"},
				"from_status": map[string]any{"type": "keyword"},
				"to_status":   map[string]any{"type": "keyword"},
				"actor_id":    map[string]any{"type": "keyword"},
				"note":        map[string]any{"type": "text"},
				"at":          map[string]any{"type": "date"},
			},
		},
		"settings": map[string]any{
			"number_of_replicas": 0,
		},
	}
	buf, _ := json.Marshal(body)
	cr, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithBody(bytes.NewReader(buf)),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indices.create: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return fmt.Errorf("indices.create error: %s", cr.String())
	}
	return nil
}

type osTransitionDoc struct {
	EventID    string  `json:"event_id"`
	OrderID    string  `json:"order_id"`
	FromStatus string  `json:"from_status,omitempty"`
	ToStatus   string  `json:"to_status"`
	ActorID    string  `json:"actor_id"`
	Note       *string `json:"note,omitempty"`
	At         string  `json:"at"`
}

func (s *EventSink) RecordTransition(ctx context.Context, e order.Event) error {
	eventID := uuid.NewString()
	doc := osTransitionDoc{
		EventID:    eventID,
		OrderID:    e.OrderID,
		FromStatus: string(e.From),
		ToStatus:   string(e.To),
		ActorID:    e.ActorID,
		Note:       e.Note,
		At:         e.At.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
	payload, _ := json.Marshal(doc)

	res, err := s.client.Index(
		s.index,
		bytes.NewReader(payload),
		s.client.Index.WithDocumentID(eventID),
		s.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index error: %s", res.String())
	}
	return nil
}
