package dispute_repo

import (
	"context"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soukcod/internal/controller/apperror"
	"soukcod/internal/domain/dispute"
	"soukcod/internal/domain/order"
)

const selectDisputeSQL = `SELECT id, order_id, opened_by, role, reason, evidence, status, resolution, outcome, resolved_by, created_at, updated_at, resolved_at FROM disputes`

func testDisputes(t *testing.T) (disputes, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return disputes{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}, mock
}

func TestDisputeByOrderID(t *testing.T) {
	repo, mock := testDisputes(t)
	ctx := context.Background()

	t.Run("should return the dispute for the order", func(t *testing.T) {
		createdAt := time.Now().UTC()
		rows := mock.NewRows(disputeColumns).
			AddRow("dispute-1", "order-1", "buyer-1", "buyer", "item not as described",
				[]byte(`["https://example.com/photo.jpg"]`), "OPEN",
				(*string)(nil), (*string)(nil), (*string)(nil), createdAt, createdAt, (*time.Time)(nil))

		mock.ExpectQuery(selectDisputeSQL + ` WHERE order_id = \$1`).
			WithArgs("order-1").
			WillReturnRows(rows)

		result, err := repo.DisputeByOrderID(ctx, "order-1")

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "dispute-1", result.ID)
		assert.Equal(t, order.RoleBuyer, result.Role)
		assert.Equal(t, []string{"https://example.com/photo.jpg"}, result.Evidence)
		assert.Nil(t, result.Outcome)
	})

	t.Run("should return nil without error when the order has no dispute", func(t *testing.T) {
		mock.ExpectQuery(selectDisputeSQL + ` WHERE order_id = \$1`).
			WithArgs("order-2").
			WillReturnRows(mock.NewRows(disputeColumns))

		result, err := repo.DisputeByOrderID(ctx, "order-2")

		require.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestDisputeForUpdate(t *testing.T) {
	repo, mock := testDisputes(t)
	ctx := context.Background()

	t.Run("should lock and return the dispute", func(t *testing.T) {
		createdAt := time.Now().UTC()
		outcome := "buyer_refund"
		resolvedBy := "reviewer-1"
		rows := mock.NewRows(disputeColumns).
			AddRow("dispute-1", "order-1", "buyer-1", "buyer", "item not as described",
				[]byte(`[]`), "RESOLVED",
				strPtr("seller never shipped"), &outcome, &resolvedBy, createdAt, createdAt, &createdAt)

		mock.ExpectQuery(selectDisputeSQL + ` WHERE id = \$1 FOR UPDATE`).
			WithArgs("dispute-1").
			WillReturnRows(rows)

		result, err := repo.DisputeForUpdate(ctx, "dispute-1")

		require.NoError(t, err)
		assert.Equal(t, dispute.StatusResolved, result.Status)
		require.NotNil(t, result.Outcome)
		assert.Equal(t, dispute.OutcomeBuyerRefund, *result.Outcome)
	})

	t.Run("should map a missing dispute", func(t *testing.T) {
		mock.ExpectQuery(selectDisputeSQL + ` WHERE id = \$1 FOR UPDATE`).
			WithArgs("ghost").
			WillReturnRows(mock.NewRows(disputeColumns))

		_, err := repo.DisputeForUpdate(ctx, "ghost")

		assert.ErrorIs(t, err, apperror.ErrDisputeNotFound)
	})
}

func TestCreateDispute(t *testing.T) {
	repo, mock := testDisputes(t)
	ctx := context.Background()

	t.Run("should insert the dispute with serialized evidence", func(t *testing.T) {
		now := time.Now().UTC()
		d := dispute.Dispute{
			ID:        "dispute-1",
			OrderID:   "order-1",
			OpenedBy:  "buyer-1",
			Role:      order.RoleBuyer,
			Reason:    "item not as described",
			Evidence:  []string{"https://example.com/photo.jpg"},
			Status:    dispute.StatusOpen,
			CreatedAt: now,
			UpdatedAt: now,
		}

		mock.ExpectExec(`INSERT INTO disputes \(id,order_id,opened_by,role,reason,evidence,status,resolution,outcome,resolved_by,created_at,updated_at,resolved_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9,\$10,\$11,\$12,\$13\)`).
			WithArgs("dispute-1", "order-1", "buyer-1", order.RoleBuyer, "item not as described",
				[]byte(`["https://example.com/photo.jpg"]`), dispute.StatusOpen,
				(*string)(nil), (*dispute.Outcome)(nil), (*string)(nil), now, now, (*time.Time)(nil)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.CreateDispute(ctx, d)

		require.NoError(t, err)
	})
}

func TestSaveDispute(t *testing.T) {
	repo, mock := testDisputes(t)
	ctx := context.Background()

	t.Run("should persist the verdict", func(t *testing.T) {
		now := time.Now().UTC()
		outcome := dispute.OutcomeBuyerRefund
		resolution := "seller never shipped"
		resolvedBy := "reviewer-1"
		d := dispute.Dispute{
			ID:         "dispute-1",
			Status:     dispute.StatusResolved,
			Resolution: &resolution,
			Outcome:    &outcome,
			ResolvedBy: &resolvedBy,
			ResolvedAt: &now,
			UpdatedAt:  now,
		}

		mock.ExpectExec(`UPDATE disputes SET status = \$1, resolution = \$2, outcome = \$3, resolved_by = \$4, resolved_at = \$5, updated_at = \$6 WHERE id = \$7`).
			WithArgs(dispute.StatusResolved, &resolution, &outcome, &resolvedBy, &now, now, "dispute-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.SaveDispute(ctx, d)

		require.NoError(t, err)
	})
}

func strPtr(s string) *string {
	return &s
}
