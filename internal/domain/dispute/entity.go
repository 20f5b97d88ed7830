package dispute

import (
	"errors"
	"time"

	"soukcod/internal/domain/order"
)

type Status string

const (
	StatusOpen        Status = "OPEN"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusResolved    Status = "RESOLVED"
)

// Outcome records which party a resolved dispute favoured.
type Outcome string

const (
	OutcomeBuyerRefund Outcome = "buyer_refund"
	OutcomeSellerFavor Outcome = "seller_favor"
)

func NewOutcome(raw string) (Outcome, error) {
	switch Outcome(raw) {
	case OutcomeBuyerRefund, OutcomeSellerFavor:
		return Outcome(raw), nil
	}
	return "", errors.New("invalid dispute outcome")
}

type Dispute struct {
	ID         string       `json:"dispute_id"`
	OrderID    string       `json:"order_id"`
	OpenedBy   string       `json:"opened_by"`
	Role       order.Role   `json:"role"`
	Reason     string       `json:"reason"`
	Evidence   []string     `json:"evidence"`
	Status     Status       `json:"status"`
	Resolution *string      `json:"resolution,omitempty"`
	Outcome    *Outcome     `json:"outcome,omitempty"`
	ResolvedBy *string      `json:"resolved_by,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
	ResolvedAt *time.Time   `json:"resolved_at,omitempty"`
}

// OpenRequest is the payload of a dispute filing.
type OpenRequest struct {
	Reason   string   `json:"reason"`
	Evidence []string `json:"evidence,omitempty"`
}

// ResolveRequest carries the reviewer's verdict. OrderStatus is the terminal
// status the order moves to, RESOLVED or CANCELLED.
type ResolveRequest struct {
	Resolution  string       `json:"resolution"`
	Outcome     Outcome      `json:"outcome"`
	OrderStatus order.Status `json:"order_status"`
}
