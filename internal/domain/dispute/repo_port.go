package dispute

import (
	"context"

	"soukcod/internal/domain/order"
	"soukcod/internal/domain/wallet"
)

//go:generate mockgen -source repo_port.go -destination mock_repo_port.go -package dispute

// TxRepo spans the dispute, the disputed order and the seller's ledger so a
// verdict lands in one transaction.
type TxRepo interface {
	wallet.TxLedger

	DisputeForUpdate(ctx context.Context, disputeID string) (Dispute, error)
	// DisputeByOrderID returns nil when the order has no dispute yet.
	DisputeByOrderID(ctx context.Context, orderID string) (*Dispute, error)
	CreateDispute(ctx context.Context, d Dispute) error
	SaveDispute(ctx context.Context, d Dispute) error

	OrderForUpdate(ctx context.Context, orderID string) (order.Order, error)
	SaveOrderStatus(ctx context.Context, o order.Order) error
}

type Repo interface {
	TxRepo
	GetDisputeByID(ctx context.Context, disputeID string) (Dispute, error)
	GetOrderByID(ctx context.Context, orderID string) (order.Order, error)
	ListDisputes(ctx context.Context) ([]Dispute, error)
	InTransaction(ctx context.Context, fn func(tx TxRepo) error) error
}
