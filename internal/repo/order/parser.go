package order_repo

import (
	"encoding/json"
	"fmt"

	"soukcod/internal/domain/order"

	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{
	"id", "buyer_id", "seller_id", "listing_id", "price_sdg", "delivery_method",
	"status", "otp", "dispute_id", "timeline", "created_at", "updated_at",
}

func marshalTimeline(timeline []order.TimelineEntry) ([]byte, error) {
	raw, err := json.Marshal(timeline)
	if err != nil {
		return nil, fmt.Errorf("marshal timeline: %w", err)
	}
	return raw, nil
}

func parseOrderRow(row pgx.Row) (order.Order, error) {
	var (
		o        order.Order
		timeline []byte
	)
	err := row.Scan(&o.ID,
		&o.BuyerID,
		&o.SellerID,
		&o.ListingID,
		&o.PriceSDG,
		&o.DeliveryMethod,
		&o.Status,
		&o.Otp,
		&o.DisputeID,
		&timeline,
		&o.CreatedAt,
		&o.UpdatedAt)
	if err != nil {
		return order.Order{}, err
	}

	if len(timeline) > 0 {
		if err := json.Unmarshal(timeline, &o.Timeline); err != nil {
			return order.Order{}, fmt.Errorf("unmarshal timeline: %w", err)
		}
	}
	return o, nil
}

func parseOrderRows(rows pgx.Rows) ([]order.Order, error) {
	var orders []order.Order
	for rows.Next() {
		o, err := parseOrderRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}
	return orders, nil
}
