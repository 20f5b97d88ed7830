package order

import (
	"context"
	"time"

	"soukcod/internal/domain/listing"
	"soukcod/internal/domain/wallet"
)

//go:generate mockgen -source repo_port.go -destination mock_repo_port.go -package order

// TxRepo is the transactional surface of an order mutation. It embeds the
// ledger so that COD bookkeeping commits or rolls back with the order row.
type TxRepo interface {
	wallet.TxLedger

	OrderForUpdate(ctx context.Context, orderID string) (Order, error)
	CreateOrder(ctx context.Context, o Order) error
	// SaveOrderStatus persists the order's status, timeline, dispute link and
	// updated_at after Apply.
	SaveOrderStatus(ctx context.Context, o Order) error

	ListingForUpdate(ctx context.Context, listingID string) (listing.Listing, error)
	SetListingStatus(ctx context.Context, listingID string, status listing.Status, updatedAt time.Time) error
}

type Repo interface {
	TxRepo
	GetOrderByID(ctx context.Context, orderID string) (Order, error)
	ListOrders(ctx context.Context, q Query) ([]Order, error)
	InTransaction(ctx context.Context, fn func(tx TxRepo) error) error
}
