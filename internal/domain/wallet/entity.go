package wallet

import (
	"time"
)

type EntryType string

const (
	TypeCredit EntryType = "CREDIT"
	TypeDebit  EntryType = "DEBIT"
)

type Reason string

const (
	ReasonTopUp       Reason = "TOP_UP"
	ReasonBump        Reason = "BUMP"
	ReasonCodExpected Reason = "COD_EXPECTED"
)

// CodStatus tracks a COD_EXPECTED entry through its lifecycle. The cash is in
// the buyer's hands until the order is confirmed, so these entries never touch
// the withdrawable balance.
type CodStatus string

const (
	CodPending   CodStatus = "pending"
	CodSettled   CodStatus = "settled"
	CodCancelled CodStatus = "cancelled"
)

// Metadata is the free-form annotation block of a ledger entry, persisted as
// JSONB. Only the fields relevant to the entry's reason are set.
type Metadata struct {
	Status        CodStatus  `json:"status,omitempty"`
	SettledAt     *time.Time `json:"settled_at,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	Method        string     `json:"method,omitempty"`
	ProofURL      string     `json:"proof_url,omitempty"`
	Kind          string     `json:"kind,omitempty"`
	DurationHours int        `json:"duration_hours,omitempty"`
}

// LedgerEntry is an immutable record of a balance-affecting or
// balance-tracking event. Amounts are integer SDG; no floating point ever
// enters balance arithmetic.
type LedgerEntry struct {
	ID             string    `json:"ledger_id"`
	UserID         string    `json:"user_id"`
	Type           EntryType `json:"type"`
	Amount         int64     `json:"amount_sdg"`
	Reason         Reason    `json:"reason"`
	ReferenceID    *string   `json:"reference_id,omitempty"`
	ApplyToBalance bool      `json:"apply_to_balance"`
	Metadata       Metadata  `json:"metadata"`
	CreatedAt      time.Time `json:"created_at"`
}

// SignedAmount is the entry's effect on balance: positive for credits,
// negative for debits.
func (e LedgerEntry) SignedAmount() int64 {
	if e.Type == TypeDebit {
		return -e.Amount
	}
	return e.Amount
}

// NewEntry is a ledger entry before the repository assigns it an id.
type NewEntry struct {
	UserID         string
	Type           EntryType
	Amount         int64
	Reason         Reason
	ReferenceID    *string
	ApplyToBalance bool
	Metadata       Metadata
	CreatedAt      time.Time
}

// CodExpected builds the escrow-style entry recorded for the seller when an
// order is placed. It never applies to balance.
func CodExpected(userID string, amount int64, orderID string, at time.Time) NewEntry {
	return NewEntry{
		UserID:         userID,
		Type:           TypeCredit,
		Amount:         amount,
		Reason:         ReasonCodExpected,
		ReferenceID:    &orderID,
		ApplyToBalance: false,
		Metadata:       Metadata{Status: CodPending},
		CreatedAt:      at,
	}
}

type Wallet struct {
	Balance int64         `json:"balance_sdg"`
	Entries []LedgerEntry `json:"entries"`
}

// Mutation is the result of a balance-affecting operation.
type Mutation struct {
	Balance int64       `json:"balance_sdg"`
	Entry   LedgerEntry `json:"entry"`
}

// ReplayBalance recomputes a balance purely from the entry log. It is the
// reference implementation of the balance invariant: the stored balance must
// always equal the sum of applied entries.
func ReplayBalance(entries []LedgerEntry) int64 {
	var balance int64
	for _, e := range entries {
		if e.ApplyToBalance {
			balance += e.SignedAmount()
		}
	}
	return balance
}
