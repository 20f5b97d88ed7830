package order

import (
	"errors"
	"slices"
	"time"
)

type Status string

const (
	StatusPlaced             Status = "PLACED"
	StatusAwaitingHandover   Status = "AWAITING_HANDOVER"
	StatusDeliveredConfirmed Status = "DELIVERED_CONFIRMED"
	StatusDisputed           Status = "DISPUTED"
	StatusCancelled          Status = "CANCELLED"
	StatusResolved           Status = "RESOLVED"
)

var AvailableStatuses = []Status{
	StatusPlaced,
	StatusAwaitingHandover,
	StatusDeliveredConfirmed,
	StatusDisputed,
	StatusCancelled,
	StatusResolved,
}

// transitions is the legal-transition table. DISPUTED and RESOLVED appear here
// but are reachable only through the dispute resolver; AdvanceStatus rejects
// them for buyer/seller actors.
var transitions = map[Status][]Status{
	StatusPlaced:             {StatusAwaitingHandover, StatusCancelled, StatusDisputed},
	StatusAwaitingHandover:   {StatusDeliveredConfirmed, StatusDisputed, StatusCancelled},
	StatusDeliveredConfirmed: {},
	StatusDisputed:           {StatusResolved},
	StatusCancelled:          {},
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

func NewStatus(raw string) (Status, error) {
	if slices.Contains(AvailableStatuses, Status(raw)) {
		return Status(raw), nil
	}
	return "", errors.New("invalid order status")
}

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

type TimelineEntry struct {
	Status Status    `json:"status"`
	At     time.Time `json:"at"`
	Note   *string   `json:"note,omitempty"`
}

type Order struct {
	ID             string          `json:"order_id"`
	BuyerID        string          `json:"buyer_id"`
	SellerID       string          `json:"seller_id"`
	ListingID      string          `json:"listing_id"`
	PriceSDG       int64           `json:"price_sdg"`
	DeliveryMethod string          `json:"delivery_method"`
	Status         Status          `json:"status"`
	Otp            string          `json:"otp,omitempty"`
	DisputeID      *string         `json:"dispute_id,omitempty"`
	Timeline       []TimelineEntry `json:"timeline"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// RoleOf resolves the actor's party on this order. ok is false when the actor
// is neither the buyer nor the seller.
func (o Order) RoleOf(actorID string) (Role, bool) {
	switch actorID {
	case o.BuyerID:
		return RoleBuyer, true
	case o.SellerID:
		return RoleSeller, true
	default:
		return "", false
	}
}

// Apply moves the order to the next status and appends the matching timeline
// entry, keeping the invariant that the last timeline status equals the order
// status. Transition legality is the caller's responsibility.
func (o *Order) Apply(next Status, at time.Time, note *string) {
	o.Status = next
	o.Timeline = append(o.Timeline, TimelineEntry{Status: next, At: at, Note: note})
	o.UpdatedAt = at
}

// ForActor returns the order as the actor may see it. The OTP is the buyer's
// proof of delivery and must never reach the seller.
func (o Order) ForActor(actorID string) Order {
	if actorID != o.BuyerID {
		o.Otp = ""
	}
	return o
}

// CancellationPolicy decides which party may cancel a pre-terminal order. The
// platform has not settled on one rule, so it is configuration, not code.
type CancellationPolicy string

const (
	CancelEither     CancellationPolicy = "either"
	CancelBuyerOnly  CancellationPolicy = "buyer_only"
	CancelSellerOnly CancellationPolicy = "seller_only"
)

func (p CancellationPolicy) Allows(role Role) bool {
	switch p {
	case CancelBuyerOnly:
		return role == RoleBuyer
	case CancelSellerOnly:
		return role == RoleSeller
	default:
		return true
	}
}

// AdvanceRequest is the payload of a status transition attempt.
type AdvanceRequest struct {
	Status Status  `json:"status"`
	Otp    string  `json:"otp,omitempty"`
	Note   *string `json:"note,omitempty"`
}

// Query filters the order list by party.
type Query struct {
	UserID string
	Role   Role
}
