package notification_repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"soukcod/internal/domain/notification"
	"soukcod/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var notificationColumns = []string{
	"id", "user_id", "type", "payload", "read", "created_at",
}

// PgNotificationRepo stores notifications in postgres and doubles as the
// default in-database notification sink.
type PgNotificationRepo struct {
	pg *postgres.Postgres
}

func NewPgNotificationRepo(pg *postgres.Postgres) *PgNotificationRepo {
	return &PgNotificationRepo{pg: pg}
}

func (r *PgNotificationRepo) Push(ctx context.Context, userID string, t notification.Type, payload map[string]any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}

	query, args, err := r.pg.Builder.Insert("notifications").
		Columns(notificationColumns...).
		Values(uuid.NewString(), userID, t, raw, false, time.Now().UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert notification query: %w", err)
	}

	if _, err := r.pg.Pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (r *PgNotificationRepo) ByUser(ctx context.Context, userID string) ([]notification.Notification, error) {
	query, args, err := r.pg.Builder.Select(notificationColumns...).
		From("notifications").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build notifications query: %w", err)
	}

	rows, err := r.pg.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	return parseNotificationRows(rows)
}

func parseNotificationRows(rows pgx.Rows) ([]notification.Notification, error) {
	var result []notification.Notification
	for rows.Next() {
		var (
			n       notification.Notification
			payload []byte
		)
		err := rows.Scan(&n.ID, &n.UserID, &n.Type, &payload, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan notification row: %w", err)
		}
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &n.Payload); err != nil {
				return nil, fmt.Errorf("unmarshal notification payload: %w", err)
			}
		}
		result = append(result, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notification rows: %w", err)
	}
	return result, nil
}
