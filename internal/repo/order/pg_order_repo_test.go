package order_repo

import (
	"context"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soukcod/internal/controller/apperror"
	"soukcod/internal/domain/order"
)

const selectOrderSQL = `SELECT id, buyer_id, seller_id, listing_id, price_sdg, delivery_method, status, otp, dispute_id, timeline, created_at, updated_at FROM orders`

func TestGetOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	orders := NewOrders(mock, squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar))
	ctx := context.Background()

	t.Run("should return the order with its timeline", func(t *testing.T) {
		createdAt := time.Now().UTC().Truncate(time.Second)
		rows := mock.NewRows(orderColumns).
			AddRow("order-1", "buyer-1", "seller-1", "listing-1", int64(150000), "seller-arranged-COD",
				"PLACED", "123456", (*string)(nil),
				[]byte(`[{"status":"PLACED","at":"2026-08-01T10:00:00Z"}]`), createdAt, createdAt)

		mock.ExpectQuery(selectOrderSQL + ` WHERE id = \$1`).
			WithArgs("order-1").
			WillReturnRows(rows)

		result, err := orders.GetOrderByID(ctx, "order-1")

		require.NoError(t, err)
		assert.Equal(t, "order-1", result.ID)
		assert.Equal(t, order.StatusPlaced, result.Status)
		assert.Equal(t, "123456", result.Otp)
		require.Len(t, result.Timeline, 1)
		assert.Equal(t, order.StatusPlaced, result.Timeline[0].Status)
	})

	t.Run("should lock the row for update", func(t *testing.T) {
		createdAt := time.Now().UTC()
		rows := mock.NewRows(orderColumns).
			AddRow("order-1", "buyer-1", "seller-1", "listing-1", int64(150000), "seller-arranged-COD",
				"AWAITING_HANDOVER", "123456", (*string)(nil), []byte(`[]`), createdAt, createdAt)

		mock.ExpectQuery(selectOrderSQL + ` WHERE id = \$1 FOR UPDATE`).
			WithArgs("order-1").
			WillReturnRows(rows)

		result, err := orders.OrderForUpdate(ctx, "order-1")

		require.NoError(t, err)
		assert.Equal(t, order.StatusAwaitingHandover, result.Status)
	})

	t.Run("should map a missing order", func(t *testing.T) {
		mock.ExpectQuery(selectOrderSQL + ` WHERE id = \$1`).
			WithArgs("ghost").
			WillReturnRows(mock.NewRows(orderColumns))

		_, err := orders.GetOrderByID(ctx, "ghost")

		assert.ErrorIs(t, err, apperror.ErrOrderNotFound)
	})
}

func TestCreateOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	orders := NewOrders(mock, squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar))
	ctx := context.Background()

	t.Run("should insert the order", func(t *testing.T) {
		now := time.Now().UTC()
		o := order.Order{
			ID:             "order-1",
			BuyerID:        "buyer-1",
			SellerID:       "seller-1",
			ListingID:      "listing-1",
			PriceSDG:       150000,
			DeliveryMethod: "seller-arranged-COD",
			Status:         order.StatusPlaced,
			Otp:            "123456",
			Timeline:       []order.TimelineEntry{{Status: order.StatusPlaced, At: now}},
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		mock.ExpectExec(`INSERT INTO orders \(id,buyer_id,seller_id,listing_id,price_sdg,delivery_method,status,otp,dispute_id,timeline,created_at,updated_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9,\$10,\$11,\$12\)`).
			WithArgs("order-1", "buyer-1", "seller-1", "listing-1", int64(150000), "seller-arranged-COD",
				order.StatusPlaced, "123456", (*string)(nil), pgxmock.AnyArg(), now, now).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := orders.CreateOrder(ctx, o)

		require.NoError(t, err)
	})

	t.Run("should handle database error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO orders`).
			WillReturnError(assert.AnError)

		err := orders.CreateOrder(ctx, order.Order{ID: "order-1"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "insert order")
	})
}

func TestSaveOrderStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	orders := NewOrders(mock, squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar))
	ctx := context.Background()

	t.Run("should persist status, dispute link and timeline", func(t *testing.T) {
		now := time.Now().UTC()
		disputeID := "dispute-1"
		o := order.Order{
			ID:        "order-1",
			Status:    order.StatusDisputed,
			DisputeID: &disputeID,
			Timeline: []order.TimelineEntry{
				{Status: order.StatusPlaced, At: now.Add(-time.Hour)},
				{Status: order.StatusDisputed, At: now},
			},
			UpdatedAt: now,
		}

		mock.ExpectExec(`UPDATE orders SET status = \$1, dispute_id = \$2, timeline = \$3, updated_at = \$4 WHERE id = \$5`).
			WithArgs(order.StatusDisputed, &disputeID, pgxmock.AnyArg(), now, "order-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := orders.SaveOrderStatus(ctx, o)

		require.NoError(t, err)
	})

	t.Run("should handle database error", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET`).
			WillReturnError(assert.AnError)

		err := orders.SaveOrderStatus(ctx, order.Order{ID: "order-1"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "update order")
	})
}

func TestListOrders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	orders := NewOrders(mock, squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar))
	ctx := context.Background()

	t.Run("should filter by buyer", func(t *testing.T) {
		createdAt := time.Now().UTC()
		rows := mock.NewRows(orderColumns).
			AddRow("order-2", "buyer-1", "seller-2", "listing-2", int64(2000), "seller-arranged-COD",
				"PLACED", "111111", (*string)(nil), []byte(`[]`), createdAt, createdAt).
			AddRow("order-1", "buyer-1", "seller-1", "listing-1", int64(1000), "seller-arranged-COD",
				"CANCELLED", "222222", (*string)(nil), []byte(`[]`), createdAt.Add(-time.Hour), createdAt)

		mock.ExpectQuery(selectOrderSQL + ` WHERE buyer_id = \$1 ORDER BY created_at DESC`).
			WithArgs("buyer-1").
			WillReturnRows(rows)

		result, err := orders.ListOrders(ctx, order.Query{UserID: "buyer-1", Role: order.RoleBuyer})

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "order-2", result[0].ID)
	})

	t.Run("should filter by seller", func(t *testing.T) {
		mock.ExpectQuery(selectOrderSQL + ` WHERE seller_id = \$1 ORDER BY created_at DESC`).
			WithArgs("seller-1").
			WillReturnRows(mock.NewRows(orderColumns))

		result, err := orders.ListOrders(ctx, order.Query{UserID: "seller-1", Role: order.RoleSeller})

		require.NoError(t, err)
		assert.Empty(t, result)
	})
}
