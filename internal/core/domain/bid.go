package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bid is an immutable monetary offer against an auction.
type Bid struct {
	BidID     int64           `json:"bidID"`
	AuctionID int64           `json:"auctionID"`
	BidderID  string          `json:"bidderID"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}

// BidPlacement is the outcome of an atomic bid insert: the persisted bid, the
// auction it was placed on and the highest bid that existed before it, if any.
type BidPlacement struct {
	Auction         Auction
	Bid             Bid
	PreviousHighest *Bid
}

// BidDecider validates a proposed bid against the locked auction and its current
// highest bid, returning the bid to persist or a rejection error.
type BidDecider func(auction Auction, highest *Bid) (Bid, error)
