package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"soukcod/internal/controller/apperror"
	"soukcod/internal/domain/listing"
	"soukcod/internal/domain/notification"
	"soukcod/internal/domain/wallet"
	"soukcod/pkg/logger"
	"soukcod/pkg/metrics"
)

type OrderService struct {
	repo     Repo
	notifier notification.Sink
	events   EventSink
	policy   CancellationPolicy
	l        *logger.Logger
}

func NewOrderService(repo Repo, notifier notification.Sink, events EventSink, policy CancellationPolicy, l *logger.Logger) *OrderService {
	return &OrderService{repo: repo, notifier: notifier, events: events, policy: policy, l: l}
}

// Create places a COD order against a published listing. The order row and the
// seller's pending COD_EXPECTED ledger entry commit in one transaction; the
// handover OTP is generated here and shown only to the buyer.
func (s *OrderService) Create(ctx context.Context, buyerID, listingID string) (Order, error) {
	now := time.Now().UTC()
	var created Order

	err := s.repo.InTransaction(ctx, func(tx TxRepo) error {
		lst, err := tx.ListingForUpdate(ctx, listingID)
		if err != nil {
			return err
		}
		if !lst.Available() {
			return apperror.ErrListingUnavailable
		}
		if lst.SellerID == buyerID {
			return apperror.ErrSellerOwnListing
		}

		created = Order{
			ID:             uuid.NewString(),
			BuyerID:        buyerID,
			SellerID:       lst.SellerID,
			ListingID:      lst.ID,
			PriceSDG:       lst.PriceSDG,
			DeliveryMethod: "seller-arranged-COD",
			Status:         StatusPlaced,
			Otp:            generateOtp(),
			Timeline:       []TimelineEntry{{Status: StatusPlaced, At: now}},
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := tx.CreateOrder(ctx, created); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		_, err = wallet.ApplyCredit(ctx, tx, wallet.CodExpected(lst.SellerID, lst.PriceSDG, created.ID, now))
		return err
	})
	if err != nil {
		return Order{}, err
	}

	metrics.LedgerEntriesTotal.WithLabelValues(string(wallet.TypeCredit), string(wallet.ReasonCodExpected)).Inc()
	s.record(ctx, Event{OrderID: created.ID, To: StatusPlaced, ActorID: buyerID, At: now})
	s.push(ctx, created.BuyerID, map[string]any{
		"order_id": created.ID,
		"message":  "order-placed",
		"otp":      created.Otp,
	})
	s.push(ctx, created.SellerID, map[string]any{
		"order_id": created.ID,
		"message":  "order-received",
		"amount":   created.PriceSDG,
	})
	return created, nil
}

// Advance moves an order along the state machine on behalf of a buyer or
// seller. DISPUTED and RESOLVED are never reachable here; disputes own those.
// A successful OTP confirmation also settles the seller's COD entry and marks
// the listing sold, all inside the same transaction.
func (s *OrderService) Advance(ctx context.Context, orderID, actorID string, req AdvanceRequest) (Order, error) {
	now := time.Now().UTC()
	var (
		updated Order
		from    Status
	)

	err := s.repo.InTransaction(ctx, func(tx TxRepo) error {
		o, err := tx.OrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		role, ok := o.RoleOf(actorID)
		if !ok {
			return apperror.ErrForbidden
		}

		next := req.Status
		if next == StatusDisputed || next == StatusResolved {
			return apperror.ErrInvalidTransition
		}
		if !o.Status.CanTransitionTo(next) {
			return apperror.ErrInvalidTransition
		}

		switch next {
		case StatusAwaitingHandover:
			if role != RoleSeller {
				return apperror.ErrOnlySellerCanAdvance
			}
		case StatusDeliveredConfirmed:
			if role != RoleBuyer {
				return apperror.ErrOnlyBuyerCanConfirm
			}
			if req.Otp != o.Otp {
				return apperror.ErrInvalidOtp
			}
			if _, err := tx.SetCodStatus(ctx, o.SellerID, o.ID, wallet.CodSettled, now); err != nil {
				return err
			}
			if err := tx.SetListingStatus(ctx, o.ListingID, listing.StatusSold, now); err != nil {
				return fmt.Errorf("mark listing sold: %w", err)
			}
		case StatusCancelled:
			if !s.policy.Allows(role) {
				return apperror.ErrCancellationDenied
			}
		}

		from = o.Status
		o.Apply(next, now, req.Note)
		if err := tx.SaveOrderStatus(ctx, o); err != nil {
			return fmt.Errorf("save order status: %w", err)
		}
		updated = o
		return nil
	})
	if err != nil {
		return Order{}, err
	}

	metrics.OrderTransitionsTotal.WithLabelValues(string(from), string(updated.Status)).Inc()
	s.record(ctx, Event{OrderID: updated.ID, From: from, To: updated.Status, ActorID: actorID, Note: req.Note, At: now})
	payload := map[string]any{
		"order_id": updated.ID,
		"status":   updated.Status,
		"message":  "status-" + string(updated.Status),
	}
	s.push(ctx, updated.BuyerID, payload)
	s.push(ctx, updated.SellerID, payload)
	return updated, nil
}

// GetByID returns the order for one of its parties, OTP stripped unless the
// actor is the buyer.
func (s *OrderService) GetByID(ctx context.Context, orderID, actorID string) (Order, error) {
	o, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return Order{}, err
	}
	if _, ok := o.RoleOf(actorID); !ok {
		return Order{}, apperror.ErrForbidden
	}
	return o.ForActor(actorID), nil
}

// List returns the actor's orders as buyer or seller, newest first.
func (s *OrderService) List(ctx context.Context, userID string, role Role) ([]Order, error) {
	orders, err := s.repo.ListOrders(ctx, Query{UserID: userID, Role: role})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	for i := range orders {
		orders[i] = orders[i].ForActor(userID)
	}
	return orders, nil
}

func (s *OrderService) record(ctx context.Context, e Event) {
	if s.events == nil {
		return
	}
	if err := s.events.RecordTransition(ctx, e); err != nil {
		s.l.Warn("order event sink failed: order_id=%s error=%v", e.OrderID, err)
	}
}

func (s *OrderService) push(ctx context.Context, userID string, payload map[string]any) {
	if err := s.notifier.Push(ctx, userID, notification.TypeOrder, payload); err != nil {
		s.l.Warn("notification push failed: user_id=%s error=%v", userID, err)
	}
}
