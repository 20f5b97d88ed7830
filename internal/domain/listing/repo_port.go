package listing

import (
	"context"
	"time"

	"soukcod/internal/domain/wallet"
)

//go:generate mockgen -source repo_port.go -destination mock_repo_port.go -package listing

type TxRepo interface {
	wallet.TxLedger
	ListingForUpdate(ctx context.Context, listingID string) (Listing, error)
	SaveBump(ctx context.Context, listingID string, bumpedUntil, updatedAt time.Time) error
}

type Repo interface {
	TxRepo
	InTransaction(ctx context.Context, fn func(tx TxRepo) error) error
}
