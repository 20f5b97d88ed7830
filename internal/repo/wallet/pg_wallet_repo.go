package wallet_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"soukcod/internal/controller/apperror"
	"soukcod/internal/domain/wallet"
	"soukcod/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ledgerColumns = []string{
	"id", "user_id", "type", "amount_sdg", "reason",
	"reference_id", "apply_to_balance", "metadata", "created_at",
}

// PgWalletRepo is the main repository
type PgWalletRepo struct {
	pg *postgres.Postgres
	Ledger
}

func NewPgWalletRepo(pg *postgres.Postgres) wallet.Repo {
	return &PgWalletRepo{
		pg:     pg,
		Ledger: NewLedger(pg.Pool, pg.Builder),
	}
}

func (r *PgWalletRepo) InTransaction(ctx context.Context, fn func(tx wallet.TxRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := NewLedger(tx, r.pg.Builder)
		return fn(&txRepo)
	})
}

// Ledger holds the users-balance and ledger-entry SQL. It is exported so that
// the order, dispute and listing repositories can embed it and run ledger
// writes on their own transaction executor.
type Ledger struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewLedger(db postgres.Executor, builder squirrel.StatementBuilderType) Ledger {
	return Ledger{db: db, builder: builder}
}

func (l *Ledger) BalanceForUpdate(ctx context.Context, userID string) (int64, error) {
	query, args, err := l.builder.Select("wallet_balance_sdg").
		From("users").
		Where(squirrel.Eq{"id": userID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build balance query: %w", err)
	}

	var balance int64
	if err := l.db.QueryRow(ctx, query, args...).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperror.ErrUserNotFound
		}
		return 0, fmt.Errorf("query balance: %w", err)
	}
	return balance, nil
}

func (l *Ledger) Balance(ctx context.Context, userID string) (int64, error) {
	query, args, err := l.builder.Select("wallet_balance_sdg").
		From("users").
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build balance query: %w", err)
	}

	var balance int64
	if err := l.db.QueryRow(ctx, query, args...).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperror.ErrUserNotFound
		}
		return 0, fmt.Errorf("query balance: %w", err)
	}
	return balance, nil
}

func (l *Ledger) ApplyBalance(ctx context.Context, userID string, balance int64) error {
	query, args, err := l.builder.Update("users").
		Set("wallet_balance_sdg", balance).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build apply balance query: %w", err)
	}

	if _, err := l.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("apply balance: %w", err)
	}
	return nil
}

func (l *Ledger) CreateEntry(ctx context.Context, entry wallet.NewEntry) (wallet.LedgerEntry, error) {
	created := wallet.LedgerEntry{
		ID:             uuid.NewString(),
		UserID:         entry.UserID,
		Type:           entry.Type,
		Amount:         entry.Amount,
		Reason:         entry.Reason,
		ReferenceID:    entry.ReferenceID,
		ApplyToBalance: entry.ApplyToBalance,
		Metadata:       entry.Metadata,
		CreatedAt:      entry.CreatedAt,
	}

	metadata, err := json.Marshal(created.Metadata)
	if err != nil {
		return wallet.LedgerEntry{}, fmt.Errorf("marshal entry metadata: %w", err)
	}

	query, args, err := l.builder.Insert("ledger_entries").
		Columns(ledgerColumns...).
		Values(created.ID, created.UserID, created.Type, created.Amount, created.Reason,
			created.ReferenceID, created.ApplyToBalance, metadata, created.CreatedAt).
		ToSql()
	if err != nil {
		return wallet.LedgerEntry{}, fmt.Errorf("build insert entry query: %w", err)
	}

	if _, err := l.db.Exec(ctx, query, args...); err != nil {
		return wallet.LedgerEntry{}, fmt.Errorf("insert ledger entry: %w", err)
	}
	return created, nil
}

func (l *Ledger) SetCodStatus(ctx context.Context, userID, orderID string, status wallet.CodStatus, at time.Time) (wallet.LedgerEntry, error) {
	query, args, err := l.builder.Select(ledgerColumns...).
		From("ledger_entries").
		Where(squirrel.Eq{
			"user_id":      userID,
			"reference_id": orderID,
			"reason":       wallet.ReasonCodExpected,
		}).
		Where("metadata->>'status' = ?", string(wallet.CodPending)).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return wallet.LedgerEntry{}, fmt.Errorf("build cod entry query: %w", err)
	}

	entry, err := parseEntryRow(l.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return wallet.LedgerEntry{}, apperror.ErrCodEntryNotFound
		}
		return wallet.LedgerEntry{}, fmt.Errorf("query cod entry: %w", err)
	}

	entry.Metadata.Status = status
	switch status {
	case wallet.CodSettled:
		entry.Metadata.SettledAt = &at
	case wallet.CodCancelled:
		entry.Metadata.CancelledAt = &at
	}

	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return wallet.LedgerEntry{}, fmt.Errorf("marshal entry metadata: %w", err)
	}

	update, args, err := l.builder.Update("ledger_entries").
		Set("metadata", metadata).
		Where(squirrel.Eq{"id": entry.ID}).
		ToSql()
	if err != nil {
		return wallet.LedgerEntry{}, fmt.Errorf("build cod update query: %w", err)
	}

	if _, err := l.db.Exec(ctx, update, args...); err != nil {
		return wallet.LedgerEntry{}, fmt.Errorf("update cod entry: %w", err)
	}
	return entry, nil
}

func (l *Ledger) EntriesByUser(ctx context.Context, userID string) ([]wallet.LedgerEntry, error) {
	query, args, err := l.builder.Select(ledgerColumns...).
		From("ledger_entries").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build entries query: %w", err)
	}

	rows, err := l.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ledger entries: %w", err)
	}
	defer rows.Close()

	return parseEntryRows(rows)
}

func parseEntryRow(row pgx.Row) (wallet.LedgerEntry, error) {
	var (
		entry    wallet.LedgerEntry
		metadata []byte
	)
	err := row.Scan(&entry.ID,
		&entry.UserID,
		&entry.Type,
		&entry.Amount,
		&entry.Reason,
		&entry.ReferenceID,
		&entry.ApplyToBalance,
		&metadata,
		&entry.CreatedAt)
	if err != nil {
		return wallet.LedgerEntry{}, err
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &entry.Metadata); err != nil {
			return wallet.LedgerEntry{}, fmt.Errorf("unmarshal entry metadata: %w", err)
		}
	}
	return entry, nil
}

func parseEntryRows(rows pgx.Rows) ([]wallet.LedgerEntry, error) {
	var entries []wallet.LedgerEntry
	for rows.Next() {
		entry, err := parseEntryRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger rows: %w", err)
	}
	return entries, nil
}
