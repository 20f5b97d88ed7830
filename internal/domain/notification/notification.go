// Package notification defines the fire-and-forget notification sink and the
// stored notification feed.
package notification

import (
	"context"
	"time"
)

type Type string

const (
	TypeOrder   Type = "ORDER"
	TypeDispute Type = "DISPUTE"
	TypePromo   Type = "PROMO"
)

type Notification struct {
	ID        string         `json:"notification_id"`
	UserID    string         `json:"user_id"`
	Type      Type           `json:"type"`
	Payload   map[string]any `json:"payload"`
	Read      bool           `json:"read"`
	CreatedAt time.Time      `json:"created_at"`
}

//go:generate mockgen -source notification.go -destination mock_notification.go -package notification

// Sink delivers a notification to a user. Implementations are best-effort:
// callers invoke Push after their mutation commits and only log failures.
type Sink interface {
	Push(ctx context.Context, userID string, t Type, payload map[string]any) error
}

// Repo reads the stored notification feed.
type Repo interface {
	ByUser(ctx context.Context, userID string) ([]Notification, error)
}

type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID string) ([]Notification, error) {
	return s.repo.ByUser(ctx, userID)
}
