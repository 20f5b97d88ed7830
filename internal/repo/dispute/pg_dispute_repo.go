package dispute_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"soukcod/internal/controller/apperror"
	"soukcod/internal/domain/dispute"
	order_repo "soukcod/internal/repo/order"
	wallet_repo "soukcod/internal/repo/wallet"
	"soukcod/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var disputeColumns = []string{
	"id", "order_id", "opened_by", "role", "reason", "evidence", "status",
	"resolution", "outcome", "resolved_by", "created_at", "updated_at", "resolved_at",
}

// PgDisputeRepo is the main repository
type PgDisputeRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgDisputeRepo(pg *postgres.Postgres) dispute.Repo {
	return &PgDisputeRepo{
		pg:   pg,
		repo: newRepo(pg.Pool, pg.Builder),
	}
}

func (r *PgDisputeRepo) InTransaction(ctx context.Context, fn func(tx dispute.TxRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := newRepo(tx, r.pg.Builder)
		return fn(&txRepo)
	})
}

type repo struct {
	disputes
	order_repo.Orders
	wallet_repo.Ledger
}

func newRepo(db postgres.Executor, builder squirrel.StatementBuilderType) repo {
	return repo{
		disputes: disputes{db: db, builder: builder},
		Orders:   order_repo.NewOrders(db, builder),
		Ledger:   wallet_repo.NewLedger(db, builder),
	}
}

type disputes struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *disputes) DisputeForUpdate(ctx context.Context, disputeID string) (dispute.Dispute, error) {
	query, args, err := r.builder.Select(disputeColumns...).
		From("disputes").
		Where(squirrel.Eq{"id": disputeID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return dispute.Dispute{}, fmt.Errorf("build dispute query: %w", err)
	}

	d, err := parseDisputeRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dispute.Dispute{}, apperror.ErrDisputeNotFound
		}
		return dispute.Dispute{}, fmt.Errorf("query dispute: %w", err)
	}
	return d, nil
}

func (r *disputes) GetDisputeByID(ctx context.Context, disputeID string) (dispute.Dispute, error) {
	query, args, err := r.builder.Select(disputeColumns...).
		From("disputes").
		Where(squirrel.Eq{"id": disputeID}).
		ToSql()
	if err != nil {
		return dispute.Dispute{}, fmt.Errorf("build dispute query: %w", err)
	}

	d, err := parseDisputeRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dispute.Dispute{}, apperror.ErrDisputeNotFound
		}
		return dispute.Dispute{}, fmt.Errorf("query dispute: %w", err)
	}
	return d, nil
}

func (r *disputes) DisputeByOrderID(ctx context.Context, orderID string) (*dispute.Dispute, error) {
	query, args, err := r.builder.Select(disputeColumns...).
		From("disputes").
		Where(squirrel.Eq{"order_id": orderID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build dispute query: %w", err)
	}

	d, err := parseDisputeRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query dispute by order: %w", err)
	}
	return &d, nil
}

func (r *disputes) CreateDispute(ctx context.Context, d dispute.Dispute) error {
	evidence, err := json.Marshal(d.Evidence)
	if err != nil {
		return fmt.Errorf("marshal evidence: %w", err)
	}

	query, args, err := r.builder.Insert("disputes").
		Columns(disputeColumns...).
		Values(d.ID, d.OrderID, d.OpenedBy, d.Role, d.Reason, evidence, d.Status,
			d.Resolution, d.Outcome, d.ResolvedBy, d.CreatedAt, d.UpdatedAt, d.ResolvedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert dispute query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert dispute: %w", err)
	}
	return nil
}

func (r *disputes) SaveDispute(ctx context.Context, d dispute.Dispute) error {
	query, args, err := r.builder.Update("disputes").
		Set("status", d.Status).
		Set("resolution", d.Resolution).
		Set("outcome", d.Outcome).
		Set("resolved_by", d.ResolvedBy).
		Set("resolved_at", d.ResolvedAt).
		Set("updated_at", d.UpdatedAt).
		Where(squirrel.Eq{"id": d.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update dispute query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update dispute: %w", err)
	}
	return nil
}

func (r *disputes) ListDisputes(ctx context.Context) ([]dispute.Dispute, error) {
	query, args, err := r.builder.Select(disputeColumns...).
		From("disputes").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build disputes query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query disputes: %w", err)
	}
	defer rows.Close()

	var result []dispute.Dispute
	for rows.Next() {
		d, err := parseDisputeRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dispute row: %w", err)
		}
		result = append(result, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dispute rows: %w", err)
	}
	return result, nil
}

func parseDisputeRow(row pgx.Row) (dispute.Dispute, error) {
	var (
		d        dispute.Dispute
		evidence []byte
		outcome  *string
	)
	err := row.Scan(&d.ID,
		&d.OrderID,
		&d.OpenedBy,
		&d.Role,
		&d.Reason,
		&evidence,
		&d.Status,
		&d.Resolution,
		&outcome,
		&d.ResolvedBy,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.ResolvedAt)
	if err != nil {
		return dispute.Dispute{}, err
	}

	if len(evidence) > 0 {
		if err := json.Unmarshal(evidence, &d.Evidence); err != nil {
			return dispute.Dispute{}, fmt.Errorf("unmarshal evidence: %w", err)
		}
	}
	if outcome != nil {
		parsed, err := dispute.NewOutcome(*outcome)
		if err != nil {
			return dispute.Dispute{}, fmt.Errorf("invalid outcome in database: %w", err)
		}
		d.Outcome = &parsed
	}
	return d, nil
}
