package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ViewerState is the bidding status of an auction as seen by one user.
type ViewerState string

const (
	StateInProgress ViewerState = "inProgress"
	StateWinning    ViewerState = "winning"
	StateOutbid     ViewerState = "outbid"
	StateDone       ViewerState = "done"
)

// Projection holds the derived, never persisted fields of an auction view.
type Projection struct {
	State             ViewerState
	CurrentHighestBid decimal.Decimal
	TimeLeft          time.Duration
}

// AuctionView is an auction together with its projection for a viewer.
type AuctionView struct {
	Auction
	Projection
}

// BidView is a bid enriched with the bidder's public profile.
type BidView struct {
	Bid
	UserName          string
	ProfilePictureURL string
}

// AuctionDetail is an auction view plus its bids, highest first.
type AuctionDetail struct {
	AuctionView
	Bids []BidView
}
