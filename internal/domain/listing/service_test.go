package listing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"soukcod/internal/controller/apperror"
	"soukcod/internal/domain/notification"
	"soukcod/internal/domain/wallet"
	"soukcod/pkg/logger"
)

func promotionService(t *testing.T, cfg BumpConfig) (*PromotionService, *MockRepo, *notification.MockSink) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepo(ctrl)
	mockSink := notification.NewMockSink(ctrl)
	return NewPromotionService(mockRepo, mockSink, cfg, logger.New("error")), mockRepo, mockSink
}

func promoInTx(ctx context.Context, mockRepo *MockRepo, mockTx *MockTxRepo) {
	mockRepo.EXPECT().InTransaction(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(tx TxRepo) error) error {
		return fn(mockTx)
	})
}

func TestPromotionService_Bump(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := BumpConfig{Rate: 0.05, Duration: 72 * time.Hour}
	published := Listing{
		ID:       "listing-1",
		SellerID: "seller-1",
		Title:    "Phone",
		PriceSDG: 1000,
		Status:   StatusPublished,
	}

	t.Run("should debit the rounded fee and stamp the promotion window", func(t *testing.T) {
		service, mockRepo, mockSink := promotionService(t, cfg)
		mockTx := NewMockTxRepo(gomock.NewController(t))
		promoInTx(ctx, mockRepo, mockTx)

		mockTx.EXPECT().ListingForUpdate(ctx, "listing-1").Return(published, nil)
		mockTx.EXPECT().BalanceForUpdate(ctx, "seller-1").Return(int64(500), nil)
		mockTx.EXPECT().ApplyBalance(ctx, "seller-1", int64(450)).Return(nil)
		mockTx.EXPECT().CreateEntry(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e wallet.NewEntry) (wallet.LedgerEntry, error) {
			assert.Equal(t, wallet.TypeDebit, e.Type)
			assert.Equal(t, int64(50), e.Amount)
			assert.Equal(t, wallet.ReasonBump, e.Reason)
			assert.Equal(t, "item", e.Metadata.Kind)
			assert.Equal(t, 72, e.Metadata.DurationHours)
			return wallet.LedgerEntry{ID: "entry-1", Amount: e.Amount}, nil
		})
		mockTx.EXPECT().SaveBump(ctx, "listing-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, bumpedUntil, updatedAt time.Time) error {
				assert.Equal(t, cfg.Duration, bumpedUntil.Sub(updatedAt))
				return nil
			})
		mockSink.EXPECT().Push(ctx, "seller-1", notification.TypePromo, gomock.Any()).Return(nil)

		result, err := service.Bump(ctx, "listing-1", "seller-1")

		require.NoError(t, err)
		assert.Equal(t, int64(50), result.FeeSDG)
		require.NotNil(t, result.Listing.BumpedUntil)
	})

	t.Run("only the owner may bump", func(t *testing.T) {
		service, mockRepo, _ := promotionService(t, cfg)
		mockTx := NewMockTxRepo(gomock.NewController(t))
		promoInTx(ctx, mockRepo, mockTx)

		mockTx.EXPECT().ListingForUpdate(ctx, "listing-1").Return(published, nil)

		_, err := service.Bump(ctx, "listing-1", "someone-else")

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("insufficient balance aborts before any write", func(t *testing.T) {
		service, mockRepo, _ := promotionService(t, cfg)
		mockTx := NewMockTxRepo(gomock.NewController(t))
		promoInTx(ctx, mockRepo, mockTx)

		mockTx.EXPECT().ListingForUpdate(ctx, "listing-1").Return(published, nil)
		mockTx.EXPECT().BalanceForUpdate(ctx, "seller-1").Return(int64(10), nil)

		_, err := service.Bump(ctx, "listing-1", "seller-1")

		assert.ErrorIs(t, err, apperror.ErrInsufficientBalance)
	})

	t.Run("missing listing propagates", func(t *testing.T) {
		service, mockRepo, _ := promotionService(t, cfg)
		mockTx := NewMockTxRepo(gomock.NewController(t))
		promoInTx(ctx, mockRepo, mockTx)

		mockTx.EXPECT().ListingForUpdate(ctx, "listing-1").Return(Listing{}, apperror.ErrListingNotFound)

		_, err := service.Bump(ctx, "listing-1", "seller-1")

		assert.ErrorIs(t, err, apperror.ErrListingNotFound)
	})
}
