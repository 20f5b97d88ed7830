package wallet

import (
	"context"
	"fmt"

	"soukcod/pkg/logger"
	"soukcod/pkg/metrics"
)

type WalletService struct {
	repo Repo
	l    *logger.Logger
}

func NewWalletService(repo Repo, l *logger.Logger) *WalletService {
	return &WalletService{repo: repo, l: l}
}

// Credit appends a credit entry for the user. When applyToBalance is set the
// balance rises in the same transaction; COD_EXPECTED bookkeeping passes false.
func (s *WalletService) Credit(ctx context.Context, userID string, amount int64, reason Reason, referenceID *string, metadata Metadata, applyToBalance bool) (Mutation, error) {
	var result Mutation
	err := s.repo.InTransaction(ctx, func(tx TxRepo) error {
		var err error
		result, err = ApplyCredit(ctx, tx, NewEntry{
			UserID:         userID,
			Amount:         amount,
			Reason:         reason,
			ReferenceID:    referenceID,
			ApplyToBalance: applyToBalance,
			Metadata:       metadata,
			CreatedAt:      now(),
		})
		return err
	})
	if err != nil {
		return Mutation{}, err
	}

	metrics.LedgerEntriesTotal.WithLabelValues(string(TypeCredit), string(reason)).Inc()
	return result, nil
}

// Debit appends a debit entry and lowers the balance. Fails with
// ErrInsufficientBalance, committing nothing, when amount exceeds the balance.
func (s *WalletService) Debit(ctx context.Context, userID string, amount int64, reason Reason, referenceID *string, metadata Metadata) (Mutation, error) {
	var result Mutation
	err := s.repo.InTransaction(ctx, func(tx TxRepo) error {
		var err error
		result, err = ApplyDebit(ctx, tx, NewEntry{
			UserID:      userID,
			Amount:      amount,
			Reason:      reason,
			ReferenceID: referenceID,
			Metadata:    metadata,
			CreatedAt:   now(),
		})
		return err
	})
	if err != nil {
		return Mutation{}, err
	}

	metrics.LedgerEntriesTotal.WithLabelValues(string(TypeDebit), string(reason)).Inc()
	return result, nil
}

// TopUp credits a manually settled deposit to the user's balance.
func (s *WalletService) TopUp(ctx context.Context, userID string, amount int64, method, proofURL string) (Mutation, error) {
	if method == "" {
		method = "manual"
	}
	return s.Credit(ctx, userID, amount, ReasonTopUp, nil, Metadata{
		Method:   method,
		ProofURL: proofURL,
	}, true)
}

// RecordCodExpected writes the pending escrow entry for the seller of a new
// order. The amount is not added to the balance.
func (s *WalletService) RecordCodExpected(ctx context.Context, userID string, amount int64, orderID string) (LedgerEntry, error) {
	result, err := s.Credit(ctx, userID, amount, ReasonCodExpected, &orderID, Metadata{Status: CodPending}, false)
	if err != nil {
		return LedgerEntry{}, err
	}
	return result.Entry, nil
}

// MarkCodSettled flips the pending COD entry for (userID, orderID) to settled.
// It does not move money into the balance: settlement of the funds themselves
// is decided by the order state machine at delivery confirmation.
func (s *WalletService) MarkCodSettled(ctx context.Context, userID, orderID string) (LedgerEntry, error) {
	return s.setCodStatus(ctx, userID, orderID, CodSettled)
}

// MarkCodCancelled flips the pending COD entry to cancelled. Used when a
// dispute resolves in the buyer's favour.
func (s *WalletService) MarkCodCancelled(ctx context.Context, userID, orderID string) (LedgerEntry, error) {
	return s.setCodStatus(ctx, userID, orderID, CodCancelled)
}

func (s *WalletService) setCodStatus(ctx context.Context, userID, orderID string, status CodStatus) (LedgerEntry, error) {
	var entry LedgerEntry
	err := s.repo.InTransaction(ctx, func(tx TxRepo) error {
		var err error
		entry, err = tx.SetCodStatus(ctx, userID, orderID, status, now())
		return err
	})
	if err != nil {
		return LedgerEntry{}, fmt.Errorf("set cod status %s: %w", status, err)
	}
	return entry, nil
}

// GetWallet returns the stored balance and the entry log, newest first.
func (s *WalletService) GetWallet(ctx context.Context, userID string) (Wallet, error) {
	balance, err := s.repo.Balance(ctx, userID)
	if err != nil {
		return Wallet{}, fmt.Errorf("get balance: %w", err)
	}

	entries, err := s.repo.EntriesByUser(ctx, userID)
	if err != nil {
		return Wallet{}, fmt.Errorf("get ledger entries: %w", err)
	}

	return Wallet{Balance: balance, Entries: entries}, nil
}
