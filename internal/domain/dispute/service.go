package dispute

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"soukcod/internal/controller/apperror"
	"soukcod/internal/domain/identity"
	"soukcod/internal/domain/notification"
	"soukcod/internal/domain/order"
	"soukcod/internal/domain/wallet"
	"soukcod/pkg/logger"
	"soukcod/pkg/metrics"
)

type DisputeService struct {
	repo     Repo
	identity identity.Provider
	notifier notification.Sink
	l        *logger.Logger
}

func NewDisputeService(repo Repo, idp identity.Provider, notifier notification.Sink, l *logger.Logger) *DisputeService {
	return &DisputeService{repo: repo, identity: idp, notifier: notifier, l: l}
}

// Open files a dispute on an order by one of its parties and freezes the order
// in DISPUTED. Filing is idempotent per order: a second call returns the
// existing dispute unchanged instead of failing.
func (s *DisputeService) Open(ctx context.Context, orderID, actorID string, req OpenRequest) (Dispute, error) {
	now := time.Now().UTC()
	var (
		result   Dispute
		o        order.Order
		from     order.Status
		existing bool
	)

	err := s.repo.InTransaction(ctx, func(tx TxRepo) error {
		var err error
		o, err = tx.OrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		role, ok := o.RoleOf(actorID)
		if !ok {
			return apperror.ErrForbidden
		}

		if prior, err := tx.DisputeByOrderID(ctx, orderID); err != nil {
			return err
		} else if prior != nil {
			result = *prior
			existing = true
			return nil
		}

		if !o.Status.CanTransitionTo(order.StatusDisputed) {
			return apperror.ErrInvalidTransition
		}

		evidence := req.Evidence
		if evidence == nil {
			evidence = []string{}
		}
		result = Dispute{
			ID:        uuid.NewString(),
			OrderID:   orderID,
			OpenedBy:  actorID,
			Role:      role,
			Reason:    req.Reason,
			Evidence:  evidence,
			Status:    StatusOpen,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.CreateDispute(ctx, result); err != nil {
			return fmt.Errorf("create dispute: %w", err)
		}

		from = o.Status
		note := "dispute opened: " + req.Reason
		o.DisputeID = &result.ID
		o.Apply(order.StatusDisputed, now, &note)
		if err := tx.SaveOrderStatus(ctx, o); err != nil {
			return fmt.Errorf("save order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return Dispute{}, err
	}
	if existing {
		return result, nil
	}

	metrics.OrderTransitionsTotal.WithLabelValues(string(from), string(order.StatusDisputed)).Inc()
	payload := map[string]any{
		"dispute_id": result.ID,
		"order_id":   orderID,
		"message":    "dispute-opened",
	}
	s.push(ctx, o.BuyerID, payload)
	s.push(ctx, o.SellerID, payload)
	return result, nil
}

// StartReview moves an OPEN dispute to UNDER_REVIEW. Reviewer or admin only.
func (s *DisputeService) StartReview(ctx context.Context, disputeID, actorID string) (Dispute, error) {
	if err := s.requireReviewer(ctx, actorID); err != nil {
		return Dispute{}, err
	}

	now := time.Now().UTC()
	var result Dispute
	err := s.repo.InTransaction(ctx, func(tx TxRepo) error {
		d, err := tx.DisputeForUpdate(ctx, disputeID)
		if err != nil {
			return err
		}
		if d.Status != StatusOpen {
			return apperror.ErrInvalidTransition
		}
		d.Status = StatusUnderReview
		d.UpdatedAt = now
		if err := tx.SaveDispute(ctx, d); err != nil {
			return fmt.Errorf("save dispute: %w", err)
		}
		result = d
		return nil
	})
	if err != nil {
		return Dispute{}, err
	}
	return result, nil
}

// Resolve closes a dispute with a verdict. The dispute record, the order's
// terminal transition and, on a buyer refund, the cancellation of the seller's
// pending COD entry all commit in one transaction.
func (s *DisputeService) Resolve(ctx context.Context, disputeID, actorID string, req ResolveRequest) (Dispute, error) {
	if err := s.requireReviewer(ctx, actorID); err != nil {
		return Dispute{}, err
	}
	if req.OrderStatus != order.StatusResolved && req.OrderStatus != order.StatusCancelled {
		return Dispute{}, apperror.ErrInvalidTransition
	}

	now := time.Now().UTC()
	var (
		result Dispute
		o      order.Order
		from   order.Status
	)

	err := s.repo.InTransaction(ctx, func(tx TxRepo) error {
		d, err := tx.DisputeForUpdate(ctx, disputeID)
		if err != nil {
			return err
		}
		if d.Status == StatusResolved {
			return apperror.ErrInvalidTransition
		}

		o, err = tx.OrderForUpdate(ctx, d.OrderID)
		if err != nil {
			return err
		}

		outcome := req.Outcome
		d.Status = StatusResolved
		d.Resolution = &req.Resolution
		d.Outcome = &outcome
		d.ResolvedBy = &actorID
		d.ResolvedAt = &now
		d.UpdatedAt = now
		if err := tx.SaveDispute(ctx, d); err != nil {
			return fmt.Errorf("save dispute: %w", err)
		}

		from = o.Status
		note := "dispute resolved: " + req.Resolution
		o.Apply(req.OrderStatus, now, &note)
		if err := tx.SaveOrderStatus(ctx, o); err != nil {
			return fmt.Errorf("save order status: %w", err)
		}

		if outcome == OutcomeBuyerRefund {
			if _, err := tx.SetCodStatus(ctx, o.SellerID, o.ID, wallet.CodCancelled, now); err != nil {
				return err
			}
		}
		result = d
		return nil
	})
	if err != nil {
		return Dispute{}, err
	}

	metrics.OrderTransitionsTotal.WithLabelValues(string(from), string(req.OrderStatus)).Inc()
	payload := map[string]any{
		"dispute_id": result.ID,
		"order_id":   result.OrderID,
		"outcome":    req.Outcome,
		"message":    "dispute-resolved",
	}
	s.push(ctx, o.BuyerID, payload)
	s.push(ctx, o.SellerID, payload)
	return result, nil
}

// GetByID returns a dispute to the reviewer desk or to one of the parties.
func (s *DisputeService) GetByID(ctx context.Context, disputeID, actorID string) (Dispute, error) {
	d, err := s.repo.GetDisputeByID(ctx, disputeID)
	if err != nil {
		return Dispute{}, err
	}

	ok, err := s.identity.HasAnyRole(ctx, actorID, identity.RoleAdmin, identity.RoleReviewer)
	if err != nil {
		return Dispute{}, fmt.Errorf("role check: %w", err)
	}
	if ok {
		return d, nil
	}

	o, err := s.repo.GetOrderByID(ctx, d.OrderID)
	if err != nil {
		return Dispute{}, err
	}
	if _, party := o.RoleOf(actorID); !party {
		return Dispute{}, apperror.ErrForbidden
	}
	return d, nil
}

// List returns all disputes for the reviewer desk.
func (s *DisputeService) List(ctx context.Context, actorID string) ([]Dispute, error) {
	if err := s.requireReviewer(ctx, actorID); err != nil {
		return nil, err
	}
	return s.repo.ListDisputes(ctx)
}

func (s *DisputeService) requireReviewer(ctx context.Context, actorID string) error {
	ok, err := s.identity.HasAnyRole(ctx, actorID, identity.RoleAdmin, identity.RoleReviewer)
	if err != nil {
		return fmt.Errorf("role check: %w", err)
	}
	if !ok {
		return apperror.ErrAdminOnly
	}
	return nil
}

func (s *DisputeService) push(ctx context.Context, userID string, payload map[string]any) {
	if err := s.notifier.Push(ctx, userID, notification.TypeDispute, payload); err != nil {
		s.l.Warn("notification push failed: user_id=%s error=%v", userID, err)
	}
}
