package listing

import "time"

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusFlagged   Status = "FLAGGED"
	StatusSold      Status = "SOLD"
)

type Listing struct {
	ID          string     `json:"listing_id"`
	SellerID    string     `json:"seller_id"`
	Title       string     `json:"title"`
	PriceSDG    int64      `json:"price_sdg"`
	Status      Status     `json:"status"`
	BumpedUntil *time.Time `json:"bumped_until,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Available reports whether the listing can be ordered.
func (l Listing) Available() bool {
	return l.Status == StatusPublished
}
