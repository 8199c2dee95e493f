package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionState is the informational lifecycle flag stored with an auction.
// Openness is always derived from EndDateTime, never from this flag.
type AuctionState string

const (
	AuctionActive    AuctionState = "Active"
	AuctionClosed    AuctionState = "Closed"
	AuctionCancelled AuctionState = "Cancelled"
)

// Auction represents a timed sale listing.
type Auction struct {
	AuctionID     int64           `json:"auctionID"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	StartingPrice decimal.Decimal `json:"startingPrice"`
	StartDateTime time.Time       `json:"startDateTime"`
	EndDateTime   time.Time       `json:"endDateTime"`
	AuctionState  AuctionState    `json:"auctionState"`
	MainImageURL  string          `json:"mainImageUrl"`
	ThumbnailURL  string          `json:"thumbnailUrl"`
	AuditFields
}

// IsOwnedBy reports whether userID created the auction.
func (a Auction) IsOwnedBy(userID string) bool {
	return a.CreatedBy == userID
}

// HasEnded reports whether the auction is closed at now.
func (a Auction) HasEnded(now time.Time) bool {
	return !a.EndDateTime.After(now)
}
