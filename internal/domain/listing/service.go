package listing

import (
	"context"
	"math"
	"time"

	"soukcod/internal/controller/apperror"
	"soukcod/internal/domain/notification"
	"soukcod/internal/domain/wallet"
	"soukcod/pkg/logger"
	"soukcod/pkg/metrics"
)

// BumpConfig controls the paid promotion: fee as a fraction of the listing
// price and how long the boosted ranking lasts.
type BumpConfig struct {
	Rate     float64
	Duration time.Duration
}

type BumpResult struct {
	Listing Listing `json:"listing"`
	FeeSDG  int64   `json:"fee_sdg"`
}

type PromotionService struct {
	repo     Repo
	notifier notification.Sink
	cfg      BumpConfig
	l        *logger.Logger
}

func NewPromotionService(repo Repo, notifier notification.Sink, cfg BumpConfig, l *logger.Logger) *PromotionService {
	return &PromotionService{repo: repo, notifier: notifier, cfg: cfg, l: l}
}

// Bump debits the bump fee from the seller's wallet and stamps the listing's
// promotion window, both in one transaction. The fee is rounded to whole SDG;
// the float is display-side only and never reaches the balance arithmetic.
func (s *PromotionService) Bump(ctx context.Context, listingID, sellerID string) (BumpResult, error) {
	now := time.Now().UTC()
	var result BumpResult

	err := s.repo.InTransaction(ctx, func(tx TxRepo) error {
		lst, err := tx.ListingForUpdate(ctx, listingID)
		if err != nil {
			return err
		}
		if lst.SellerID != sellerID {
			return apperror.ErrForbidden
		}

		fee := int64(math.Round(float64(lst.PriceSDG) * s.cfg.Rate))
		mutation, err := wallet.ApplyDebit(ctx, tx, wallet.NewEntry{
			UserID:      sellerID,
			Amount:      fee,
			Reason:      wallet.ReasonBump,
			ReferenceID: &listingID,
			Metadata: wallet.Metadata{
				Kind:          "item",
				DurationHours: int(s.cfg.Duration.Hours()),
			},
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		bumpedUntil := now.Add(s.cfg.Duration)
		if err := tx.SaveBump(ctx, listingID, bumpedUntil, now); err != nil {
			return err
		}

		lst.BumpedUntil = &bumpedUntil
		lst.UpdatedAt = now
		result = BumpResult{Listing: lst, FeeSDG: mutation.Entry.Amount}
		return nil
	})
	if err != nil {
		return BumpResult{}, err
	}

	metrics.LedgerEntriesTotal.WithLabelValues(string(wallet.TypeDebit), string(wallet.ReasonBump)).Inc()
	s.push(ctx, sellerID, map[string]any{
		"listing_id":   listingID,
		"message":      "listing-bumped",
		"bumped_until": result.Listing.BumpedUntil,
	})
	return result, nil
}

func (s *PromotionService) push(ctx context.Context, userID string, payload map[string]any) {
	if err := s.notifier.Push(ctx, userID, notification.TypePromo, payload); err != nil {
		s.l.Warn("notification push failed: user_id=%s error=%v", userID, err)
	}
}
