package identity_repo

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"soukcod/internal/controller/apperror"
	"soukcod/internal/domain/identity"
	"soukcod/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// PgIdentityProvider answers role checks from the users table.
type PgIdentityProvider struct {
	pg *postgres.Postgres
}

func NewPgIdentityProvider(pg *postgres.Postgres) identity.Provider {
	return &PgIdentityProvider{pg: pg}
}

func (p *PgIdentityProvider) HasAnyRole(ctx context.Context, userID string, roles ...identity.Role) (bool, error) {
	query, args, err := p.pg.Builder.Select("roles").
		From("users").
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build roles query: %w", err)
	}

	var held []string
	if err := p.pg.Pool.QueryRow(ctx, query, args...).Scan(&held); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperror.ErrUserNotFound
		}
		return false, fmt.Errorf("query roles: %w", err)
	}

	for _, role := range roles {
		if slices.Contains(held, string(role)) {
			return true, nil
		}
	}
	return false, nil
}
