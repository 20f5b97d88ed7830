package wallet_repo

import (
	"context"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soukcod/internal/controller/apperror"
	"soukcod/internal/domain/wallet"
)

func TestBalanceForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ledger := NewLedger(mock, squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar))
	ctx := context.Background()

	t.Run("should lock the user row and return the balance", func(t *testing.T) {
		rows := mock.NewRows([]string{"wallet_balance_sdg"}).AddRow(int64(1500))

		mock.ExpectQuery(`SELECT wallet_balance_sdg FROM users WHERE id = \$1 FOR UPDATE`).
			WithArgs("user-1").
			WillReturnRows(rows)

		balance, err := ledger.BalanceForUpdate(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, int64(1500), balance)
	})

	t.Run("should map a missing user", func(t *testing.T) {
		mock.ExpectQuery(`SELECT wallet_balance_sdg FROM users WHERE id = \$1 FOR UPDATE`).
			WithArgs("ghost").
			WillReturnRows(mock.NewRows([]string{"wallet_balance_sdg"}))

		_, err := ledger.BalanceForUpdate(ctx, "ghost")

		assert.ErrorIs(t, err, apperror.ErrUserNotFound)
	})
}

func TestApplyBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ledger := NewLedger(mock, squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar))
	ctx := context.Background()

	t.Run("should store the new balance", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users SET wallet_balance_sdg = \$1 WHERE id = \$2`).
			WithArgs(int64(950), "user-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := ledger.ApplyBalance(ctx, "user-1", 950)

		require.NoError(t, err)
	})

	t.Run("should handle database error", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users SET wallet_balance_sdg = \$1 WHERE id = \$2`).
			WillReturnError(assert.AnError)

		err := ledger.ApplyBalance(ctx, "user-1", 950)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "apply balance")
	})
}

func TestCreateEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ledger := NewLedger(mock, squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar))
	ctx := context.Background()

	t.Run("should insert the entry and assign it an id", func(t *testing.T) {
		createdAt := time.Now().UTC()
		entry := wallet.NewEntry{
			UserID:         "user-1",
			Type:           wallet.TypeCredit,
			Amount:         1000,
			Reason:         wallet.ReasonTopUp,
			ApplyToBalance: true,
			Metadata:       wallet.Metadata{Method: "manual"},
			CreatedAt:      createdAt,
		}

		mock.ExpectExec(`INSERT INTO ledger_entries \(id,user_id,type,amount_sdg,reason,reference_id,apply_to_balance,metadata,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9\)`).
			WithArgs(pgxmock.AnyArg(), "user-1", wallet.TypeCredit, int64(1000), wallet.ReasonTopUp,
				(*string)(nil), true, []byte(`{"method":"manual"}`), createdAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		created, err := ledger.CreateEntry(ctx, entry)

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, entry.Amount, created.Amount)
	})

	t.Run("should handle database error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO ledger_entries`).
			WillReturnError(assert.AnError)

		_, err := ledger.CreateEntry(ctx, wallet.NewEntry{UserID: "user-1", Type: wallet.TypeCredit, Amount: 1})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "insert ledger entry")
	})
}

func TestSetCodStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ledger := NewLedger(mock, squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar))
	ctx := context.Background()

	selectQuery := `SELECT id, user_id, type, amount_sdg, reason, reference_id, apply_to_balance, metadata, created_at FROM ledger_entries WHERE reason = \$1 AND reference_id = \$2 AND user_id = \$3 AND metadata->>'status' = \$4 FOR UPDATE`

	t.Run("should settle the pending entry", func(t *testing.T) {
		createdAt := time.Now().UTC()
		orderID := "order-1"
		rows := mock.NewRows(ledgerColumns).
			AddRow("entry-1", "seller-1", "CREDIT", int64(150000), "COD_EXPECTED",
				&orderID, false, []byte(`{"status":"pending"}`), createdAt)

		mock.ExpectQuery(selectQuery).
			WithArgs(wallet.ReasonCodExpected, "order-1", "seller-1", "pending").
			WillReturnRows(rows)
		mock.ExpectExec(`UPDATE ledger_entries SET metadata = \$1 WHERE id = \$2`).
			WithArgs(pgxmock.AnyArg(), "entry-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		entry, err := ledger.SetCodStatus(ctx, "seller-1", "order-1", wallet.CodSettled, createdAt)

		require.NoError(t, err)
		assert.Equal(t, wallet.CodSettled, entry.Metadata.Status)
		require.NotNil(t, entry.Metadata.SettledAt)
	})

	t.Run("should map a missing pending entry", func(t *testing.T) {
		mock.ExpectQuery(selectQuery).
			WithArgs(wallet.ReasonCodExpected, "order-1", "seller-1", "pending").
			WillReturnRows(mock.NewRows(ledgerColumns))

		_, err := ledger.SetCodStatus(ctx, "seller-1", "order-1", wallet.CodCancelled, time.Now())

		assert.ErrorIs(t, err, apperror.ErrCodEntryNotFound)
	})
}

func TestEntriesByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ledger := NewLedger(mock, squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar))
	ctx := context.Background()

	t.Run("should return entries newest first", func(t *testing.T) {
		createdAt := time.Now().UTC()
		rows := mock.NewRows(ledgerColumns).
			AddRow("entry-2", "user-1", "DEBIT", int64(50), "BUMP",
				(*string)(nil), true, []byte(`{"kind":"item"}`), createdAt).
			AddRow("entry-1", "user-1", "CREDIT", int64(1000), "TOP_UP",
				(*string)(nil), true, []byte(`{"method":"manual"}`), createdAt.Add(-time.Hour))

		mock.ExpectQuery(`SELECT id, user_id, type, amount_sdg, reason, reference_id, apply_to_balance, metadata, created_at FROM ledger_entries WHERE user_id = \$1 ORDER BY created_at DESC`).
			WithArgs("user-1").
			WillReturnRows(rows)

		entries, err := ledger.EntriesByUser(ctx, "user-1")

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "entry-2", entries[0].ID)
		assert.Equal(t, wallet.TypeDebit, entries[0].Type)
		assert.Equal(t, "item", entries[0].Metadata.Kind)
		assert.Equal(t, "manual", entries[1].Metadata.Method)
	})
}
