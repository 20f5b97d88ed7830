package wallet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"soukcod/internal/controller/apperror"
	"soukcod/pkg/logger"
)

func walletService(t *testing.T) (*WalletService, *MockRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepo(ctrl)
	return NewWalletService(mockRepo, logger.New("error")), mockRepo
}

func walletInTx(ctx context.Context, mockRepo *MockRepo, mockTx *MockTxRepo) {
	mockRepo.EXPECT().InTransaction(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(tx TxRepo) error) error {
		return fn(mockTx)
	})
}

func TestWalletService_TopUp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should raise balance and append entry in one transaction", func(t *testing.T) {
		service, mockRepo := walletService(t)
		mockTx := NewMockTxRepo(gomock.NewController(t))
		walletInTx(ctx, mockRepo, mockTx)

		mockTx.EXPECT().BalanceForUpdate(ctx, "user-1").Return(int64(500), nil)
		mockTx.EXPECT().ApplyBalance(ctx, "user-1", int64(1500)).Return(nil)
		mockTx.EXPECT().CreateEntry(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e NewEntry) (LedgerEntry, error) {
			assert.Equal(t, TypeCredit, e.Type)
			assert.Equal(t, int64(1000), e.Amount)
			assert.Equal(t, ReasonTopUp, e.Reason)
			assert.True(t, e.ApplyToBalance)
			assert.Equal(t, "bank-transfer", e.Metadata.Method)
			assert.Equal(t, "https://example.com/receipt.jpg", e.Metadata.ProofURL)
			return LedgerEntry{ID: "entry-1"}, nil
		})

		result, err := service.TopUp(ctx, "user-1", 1000, "bank-transfer", "https://example.com/receipt.jpg")

		require.NoError(t, err)
		assert.Equal(t, int64(1500), result.Balance)
		assert.Equal(t, "entry-1", result.Entry.ID)
	})

	t.Run("should default the method to manual", func(t *testing.T) {
		service, mockRepo := walletService(t)
		mockTx := NewMockTxRepo(gomock.NewController(t))
		walletInTx(ctx, mockRepo, mockTx)

		mockTx.EXPECT().BalanceForUpdate(ctx, "user-1").Return(int64(0), nil)
		mockTx.EXPECT().ApplyBalance(ctx, "user-1", int64(200)).Return(nil)
		mockTx.EXPECT().CreateEntry(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e NewEntry) (LedgerEntry, error) {
			assert.Equal(t, "manual", e.Metadata.Method)
			return LedgerEntry{}, nil
		})

		_, err := service.TopUp(ctx, "user-1", 200, "", "")

		require.NoError(t, err)
	})

	t.Run("should reject non-positive amounts before touching the balance", func(t *testing.T) {
		service, mockRepo := walletService(t)
		mockTx := NewMockTxRepo(gomock.NewController(t))
		walletInTx(ctx, mockRepo, mockTx)

		_, err := service.TopUp(ctx, "user-1", 0, "manual", "")

		assert.ErrorIs(t, err, apperror.ErrInvalidAmount)
	})

	t.Run("should propagate unknown user", func(t *testing.T) {
		service, mockRepo := walletService(t)
		mockTx := NewMockTxRepo(gomock.NewController(t))
		walletInTx(ctx, mockRepo, mockTx)

		mockTx.EXPECT().BalanceForUpdate(ctx, "ghost").Return(int64(0), apperror.ErrUserNotFound)

		_, err := service.TopUp(ctx, "ghost", 100, "manual", "")

		assert.ErrorIs(t, err, apperror.ErrUserNotFound)
	})
}

func TestWalletService_Debit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should lower balance and append debit entry", func(t *testing.T) {
		service, mockRepo := walletService(t)
		mockTx := NewMockTxRepo(gomock.NewController(t))
		walletInTx(ctx, mockRepo, mockTx)

		mockTx.EXPECT().BalanceForUpdate(ctx, "user-1").Return(int64(1000), nil)
		mockTx.EXPECT().ApplyBalance(ctx, "user-1", int64(950)).Return(nil)
		mockTx.EXPECT().CreateEntry(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e NewEntry) (LedgerEntry, error) {
			assert.Equal(t, TypeDebit, e.Type)
			assert.Equal(t, int64(50), e.Amount)
			assert.True(t, e.ApplyToBalance)
			return LedgerEntry{ID: "entry-1"}, nil
		})

		result, err := service.Debit(ctx, "user-1", 50, ReasonBump, nil, Metadata{Kind: "bump"})

		require.NoError(t, err)
		assert.Equal(t, int64(950), result.Balance)
	})

	t.Run("should fail on insufficient balance without writing anything", func(t *testing.T) {
		service, mockRepo := walletService(t)
		mockTx := NewMockTxRepo(gomock.NewController(t))
		walletInTx(ctx, mockRepo, mockTx)

		mockTx.EXPECT().BalanceForUpdate(ctx, "user-1").Return(int64(30), nil)

		_, err := service.Debit(ctx, "user-1", 50, ReasonBump, nil, Metadata{})

		assert.ErrorIs(t, err, apperror.ErrInsufficientBalance)
	})
}

func TestWalletService_RecordCodExpected(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should append pending entry without moving the balance", func(t *testing.T) {
		service, mockRepo := walletService(t)
		mockTx := NewMockTxRepo(gomock.NewController(t))
		walletInTx(ctx, mockRepo, mockTx)

		mockTx.EXPECT().BalanceForUpdate(ctx, "seller-1").Return(int64(700), nil)
		mockTx.EXPECT().CreateEntry(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e NewEntry) (LedgerEntry, error) {
			assert.Equal(t, TypeCredit, e.Type)
			assert.Equal(t, ReasonCodExpected, e.Reason)
			assert.False(t, e.ApplyToBalance)
			assert.Equal(t, CodPending, e.Metadata.Status)
			require.NotNil(t, e.ReferenceID)
			assert.Equal(t, "order-1", *e.ReferenceID)
			return LedgerEntry{ID: "entry-1"}, nil
		})

		entry, err := service.RecordCodExpected(ctx, "seller-1", 150000, "order-1")

		require.NoError(t, err)
		assert.Equal(t, "entry-1", entry.ID)
	})
}

func TestWalletService_MarkCod(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should settle the pending entry", func(t *testing.T) {
		service, mockRepo := walletService(t)
		mockTx := NewMockTxRepo(gomock.NewController(t))
		walletInTx(ctx, mockRepo, mockTx)

		mockTx.EXPECT().SetCodStatus(ctx, "seller-1", "order-1", CodSettled, gomock.Any()).
			Return(LedgerEntry{ID: "entry-1", Metadata: Metadata{Status: CodSettled}}, nil)

		entry, err := service.MarkCodSettled(ctx, "seller-1", "order-1")

		require.NoError(t, err)
		assert.Equal(t, CodSettled, entry.Metadata.Status)
	})

	t.Run("should cancel the pending entry", func(t *testing.T) {
		service, mockRepo := walletService(t)
		mockTx := NewMockTxRepo(gomock.NewController(t))
		walletInTx(ctx, mockRepo, mockTx)

		mockTx.EXPECT().SetCodStatus(ctx, "seller-1", "order-1", CodCancelled, gomock.Any()).
			Return(LedgerEntry{ID: "entry-1", Metadata: Metadata{Status: CodCancelled}}, nil)

		entry, err := service.MarkCodCancelled(ctx, "seller-1", "order-1")

		require.NoError(t, err)
		assert.Equal(t, CodCancelled, entry.Metadata.Status)
	})

	t.Run("should surface a missing pending entry", func(t *testing.T) {
		service, mockRepo := walletService(t)
		mockTx := NewMockTxRepo(gomock.NewController(t))
		walletInTx(ctx, mockRepo, mockTx)

		mockTx.EXPECT().SetCodStatus(ctx, "seller-1", "order-1", CodSettled, gomock.Any()).
			Return(LedgerEntry{}, apperror.ErrCodEntryNotFound)

		_, err := service.MarkCodSettled(ctx, "seller-1", "order-1")

		assert.ErrorIs(t, err, apperror.ErrCodEntryNotFound)
	})
}

func TestWalletService_GetWallet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should return balance and entries", func(t *testing.T) {
		service, mockRepo := walletService(t)
		entries := []LedgerEntry{
			{ID: "entry-2", Type: TypeDebit, Amount: 50, ApplyToBalance: true},
			{ID: "entry-1", Type: TypeCredit, Amount: 1000, ApplyToBalance: true},
		}
		mockRepo.EXPECT().Balance(ctx, "user-1").Return(int64(950), nil)
		mockRepo.EXPECT().EntriesByUser(ctx, "user-1").Return(entries, nil)

		w, err := service.GetWallet(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, int64(950), w.Balance)
		assert.Equal(t, entries, w.Entries)
		assert.Equal(t, w.Balance, ReplayBalance(w.Entries))
	})

	t.Run("should propagate balance lookup failure", func(t *testing.T) {
		service, mockRepo := walletService(t)
		mockRepo.EXPECT().Balance(ctx, "user-1").Return(int64(0), errors.New("database error"))

		_, err := service.GetWallet(ctx, "user-1")

		assert.EqualError(t, err, "get balance: database error")
	})
}

func TestReplayBalance(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	entries := []LedgerEntry{
		{Type: TypeCredit, Amount: 1000, ApplyToBalance: true, CreatedAt: now},
		{Type: TypeCredit, Amount: 150000, ApplyToBalance: false, Metadata: Metadata{Status: CodPending}, CreatedAt: now},
		{Type: TypeDebit, Amount: 50, ApplyToBalance: true, CreatedAt: now},
	}

	assert.Equal(t, int64(950), ReplayBalance(entries))
	assert.Equal(t, int64(0), ReplayBalance(nil))
}
