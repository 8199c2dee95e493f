package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Auction is a row of the auctions table.
type Auction struct {
	AuctionID     int64           `db:"auction_id"`
	Title         string          `db:"title"`
	Description   string          `db:"description"`
	StartingPrice decimal.Decimal `db:"starting_price"` // NUMERIC(18,2)
	StartDateTime time.Time       `db:"start_date_time"`
	EndDateTime   time.Time       `db:"end_date_time"`
	AuctionState  string          `db:"auction_state"`
	MainImageURL  string          `db:"main_image_url"`
	ThumbnailURL  string          `db:"thumbnail_url"`
	AuditFields
}

// Bid is a row of the bids table. Rows are never updated.
type Bid struct {
	BidID     int64           `db:"bid_id"`
	AuctionID int64           `db:"auction_id"`
	BidderID  string          `db:"bidder_id"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}
