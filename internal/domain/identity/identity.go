// Package identity is the injected capability for role checks. The core never
// reaches into user management directly; it only asks whether an opaque actor
// id holds a role.
package identity

import "context"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleReviewer Role = "REVIEWER"
)

//go:generate mockgen -source identity.go -destination mock_identity.go -package identity

type Provider interface {
	HasAnyRole(ctx context.Context, userID string, roles ...Role) (bool, error)
}
