package wallet

import (
	"context"
	"fmt"
	"time"

	"soukcod/internal/controller/apperror"
)

// ApplyCredit appends a credit entry inside the caller's transaction and, when
// applyToBalance is set, raises the user's balance. Returns the resulting
// balance alongside the entry.
func ApplyCredit(ctx context.Context, tx TxLedger, entry NewEntry) (Mutation, error) {
	if entry.Amount <= 0 {
		return Mutation{}, apperror.ErrInvalidAmount
	}
	entry.Type = TypeCredit

	balance, err := tx.BalanceForUpdate(ctx, entry.UserID)
	if err != nil {
		return Mutation{}, fmt.Errorf("load balance: %w", err)
	}

	if entry.ApplyToBalance {
		balance += entry.Amount
		if err := tx.ApplyBalance(ctx, entry.UserID, balance); err != nil {
			return Mutation{}, fmt.Errorf("apply balance: %w", err)
		}
	}

	created, err := tx.CreateEntry(ctx, entry)
	if err != nil {
		return Mutation{}, fmt.Errorf("create ledger entry: %w", err)
	}
	return Mutation{Balance: balance, Entry: created}, nil
}

// ApplyDebit appends a debit entry inside the caller's transaction and lowers
// the user's balance. A debit that would drive the balance negative fails with
// ErrInsufficientBalance before anything is written, so the surrounding
// transaction stays clean.
func ApplyDebit(ctx context.Context, tx TxLedger, entry NewEntry) (Mutation, error) {
	if entry.Amount <= 0 {
		return Mutation{}, apperror.ErrInvalidAmount
	}
	entry.Type = TypeDebit
	entry.ApplyToBalance = true

	balance, err := tx.BalanceForUpdate(ctx, entry.UserID)
	if err != nil {
		return Mutation{}, fmt.Errorf("load balance: %w", err)
	}
	if entry.Amount > balance {
		return Mutation{}, apperror.ErrInsufficientBalance
	}

	balance -= entry.Amount
	if err := tx.ApplyBalance(ctx, entry.UserID, balance); err != nil {
		return Mutation{}, fmt.Errorf("apply balance: %w", err)
	}

	created, err := tx.CreateEntry(ctx, entry)
	if err != nil {
		return Mutation{}, fmt.Errorf("create ledger entry: %w", err)
	}
	return Mutation{Balance: balance, Entry: created}, nil
}

func now() time.Time {
	return time.Now().UTC()
}
