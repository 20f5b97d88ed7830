package wallet

import (
	"context"
	"time"
)

//go:generate mockgen -source repo_port.go -destination mock_repo_port.go -package wallet

// TxLedger is the transactional ledger surface. It is embedded into the order,
// dispute and listing repository ports so that those domains can drive ledger
// effects inside their own transactions.
type TxLedger interface {
	// BalanceForUpdate locks the user row and returns the current balance.
	BalanceForUpdate(ctx context.Context, userID string) (int64, error)
	// ApplyBalance stores a new balance for the user.
	ApplyBalance(ctx context.Context, userID string, balance int64) error
	// CreateEntry appends an entry to the ledger and returns it with its id.
	CreateEntry(ctx context.Context, entry NewEntry) (LedgerEntry, error)
	// SetCodStatus flips the pending COD_EXPECTED entry for (userID, orderID)
	// to the given status, stamping the corresponding time.
	SetCodStatus(ctx context.Context, userID, orderID string, status CodStatus, at time.Time) (LedgerEntry, error)
}

type TxRepo interface {
	TxLedger
}

type Repo interface {
	TxRepo
	Balance(ctx context.Context, userID string) (int64, error)
	EntriesByUser(ctx context.Context, userID string) ([]LedgerEntry, error)
	InTransaction(ctx context.Context, fn func(tx TxRepo) error) error
}
