package listing_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"soukcod/internal/controller/apperror"
	"soukcod/internal/domain/listing"
	"soukcod/pkg/postgres"
	wallet_repo "soukcod/internal/repo/wallet"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var listingColumns = []string{
	"id", "seller_id", "title", "price_sdg", "status",
	"bumped_until", "created_at", "updated_at",
}

// PgListingRepo is the main repository
type PgListingRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgListingRepo(pg *postgres.Postgres) listing.Repo {
	return &PgListingRepo{
		pg:   pg,
		repo: newRepo(pg.Pool, pg.Builder),
	}
}

func (r *PgListingRepo) InTransaction(ctx context.Context, fn func(tx listing.TxRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := newRepo(tx, r.pg.Builder)
		return fn(&txRepo)
	})
}

type repo struct {
	Listings
	wallet_repo.Ledger
}

func newRepo(db postgres.Executor, builder squirrel.StatementBuilderType) repo {
	return repo{
		Listings: NewListings(db, builder),
		Ledger:   wallet_repo.NewLedger(db, builder),
	}
}

// Listings holds the listing SQL. Exported so the order repository can embed
// it and lock listings inside an order transaction.
type Listings struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewListings(db postgres.Executor, builder squirrel.StatementBuilderType) Listings {
	return Listings{db: db, builder: builder}
}

func (l *Listings) ListingForUpdate(ctx context.Context, listingID string) (listing.Listing, error) {
	query, args, err := l.builder.Select(listingColumns...).
		From("listings").
		Where(squirrel.Eq{"id": listingID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return listing.Listing{}, fmt.Errorf("build listing query: %w", err)
	}

	lst, err := parseListingRow(l.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return listing.Listing{}, apperror.ErrListingNotFound
		}
		return listing.Listing{}, fmt.Errorf("query listing: %w", err)
	}
	return lst, nil
}

func (l *Listings) SetListingStatus(ctx context.Context, listingID string, status listing.Status, updatedAt time.Time) error {
	query, args, err := l.builder.Update("listings").
		Set("status", status).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": listingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build listing status query: %w", err)
	}

	if _, err := l.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update listing status: %w", err)
	}
	return nil
}

func (l *Listings) SaveBump(ctx context.Context, listingID string, bumpedUntil, updatedAt time.Time) error {
	query, args, err := l.builder.Update("listings").
		Set("bumped_until", bumpedUntil).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": listingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build bump query: %w", err)
	}

	if _, err := l.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update listing bump: %w", err)
	}
	return nil
}

func parseListingRow(row pgx.Row) (listing.Listing, error) {
	var lst listing.Listing
	err := row.Scan(&lst.ID,
		&lst.SellerID,
		&lst.Title,
		&lst.PriceSDG,
		&lst.Status,
		&lst.BumpedUntil,
		&lst.CreatedAt,
		&lst.UpdatedAt)
	if err != nil {
		return listing.Listing{}, err
	}
	return lst, nil
}
