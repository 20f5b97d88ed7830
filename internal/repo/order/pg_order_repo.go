package order_repo

import (
	"context"
	"errors"
	"fmt"

	"soukcod/internal/controller/apperror"
	"soukcod/internal/domain/order"
	listing_repo "soukcod/internal/repo/listing"
	wallet_repo "soukcod/internal/repo/wallet"
	"soukcod/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// PgOrderRepo is the main repository
type PgOrderRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgOrderRepo(pg *postgres.Postgres) order.Repo {
	return &PgOrderRepo{
		pg:   pg,
		repo: newRepo(pg.Pool, pg.Builder),
	}
}

func (r *PgOrderRepo) InTransaction(ctx context.Context, fn func(tx order.TxRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := newRepo(tx, r.pg.Builder)
		return fn(&txRepo)
	})
}

type repo struct {
	Orders
	listing_repo.Listings
	wallet_repo.Ledger
}

func newRepo(db postgres.Executor, builder squirrel.StatementBuilderType) repo {
	return repo{
		Orders:   NewOrders(db, builder),
		Listings: listing_repo.NewListings(db, builder),
		Ledger:   wallet_repo.NewLedger(db, builder),
	}
}

// Orders holds the order SQL. Exported so the dispute repository can embed it
// and move orders inside a dispute transaction.
type Orders struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewOrders(db postgres.Executor, builder squirrel.StatementBuilderType) Orders {
	return Orders{db: db, builder: builder}
}

func (r *Orders) OrderForUpdate(ctx context.Context, orderID string) (order.Order, error) {
	return r.getOrder(ctx, orderID, true)
}

func (r *Orders) GetOrderByID(ctx context.Context, orderID string) (order.Order, error) {
	return r.getOrder(ctx, orderID, false)
}

func (r *Orders) getOrder(ctx context.Context, orderID string, forUpdate bool) (order.Order, error) {
	builder := r.builder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"id": orderID})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("build order query: %w", err)
	}

	o, err := parseOrderRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.Order{}, apperror.ErrOrderNotFound
		}
		return order.Order{}, fmt.Errorf("query order: %w", err)
	}
	return o, nil
}

func (r *Orders) CreateOrder(ctx context.Context, o order.Order) error {
	timeline, err := marshalTimeline(o.Timeline)
	if err != nil {
		return err
	}

	query, args, err := r.builder.Insert("orders").
		Columns(orderColumns...).
		Values(o.ID, o.BuyerID, o.SellerID, o.ListingID, o.PriceSDG, o.DeliveryMethod,
			o.Status, o.Otp, o.DisputeID, timeline, o.CreatedAt, o.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert order query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *Orders) SaveOrderStatus(ctx context.Context, o order.Order) error {
	timeline, err := marshalTimeline(o.Timeline)
	if err != nil {
		return err
	}

	query, args, err := r.builder.Update("orders").
		Set("status", o.Status).
		Set("dispute_id", o.DisputeID).
		Set("timeline", timeline).
		Set("updated_at", o.UpdatedAt).
		Where(squirrel.Eq{"id": o.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update order query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

func (r *Orders) ListOrders(ctx context.Context, q order.Query) ([]order.Order, error) {
	builder := r.builder.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")

	switch q.Role {
	case order.RoleSeller:
		builder = builder.Where(squirrel.Eq{"seller_id": q.UserID})
	default:
		builder = builder.Where(squirrel.Eq{"buyer_id": q.UserID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build orders query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	return parseOrderRows(rows)
}
