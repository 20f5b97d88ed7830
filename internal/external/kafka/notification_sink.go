package kafka

import (
	"context"

	"soukcod/internal/domain/notification"
	"soukcod/internal/messaging"
)

// NotificationSink pushes notifications onto a Kafka topic instead of the
// notifications table. Downstream delivery workers own the fan-out.
type NotificationSink struct {
	publisher messaging.Publisher
}

func NewNotificationSink(publisher messaging.Publisher) *NotificationSink {
	return &NotificationSink{publisher: publisher}
}

func (s *NotificationSink) Push(ctx context.Context, userID string, t notification.Type, payload map[string]any) error {
	env, err := messaging.NewEnvelope(userID, string(t), payload)
	if err != nil {
		return err
	}
	return s.publisher.Publish(ctx, env)
}
