// Package bidding holds the pure auction rules: highest-bid selection, the
// minimum acceptable bid, bid validation and the viewer-relative projection.
package bidding

import (
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/auctionbay/internal/apperrors"
	"github.com/SscSPs/auctionbay/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MinimumIncrement is the amount a new bid must exceed the current highest bid by.
var MinimumIncrement = decimal.NewFromInt(1)

// HighestBid returns the bid with the largest amount. Equal amounts are broken
// by the earliest CreatedAt, then by the lowest BidID. Returns nil for no bids.
func HighestBid(bids []domain.Bid) *domain.Bid {
	var highest *domain.Bid
	for i := range bids {
		if highest == nil || outranks(bids[i], *highest) {
			highest = &bids[i]
		}
	}
	return highest
}

func outranks(a, b domain.Bid) bool {
	if c := a.Amount.Cmp(b.Amount); c != 0 {
		return c > 0
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.BidID < b.BidID
}

// RankBids returns a copy of bids ordered highest first, using the same
// tie-break as HighestBid.
func RankBids(bids []domain.Bid) []domain.Bid {
	ranked := slices.Clone(bids)
	slices.SortFunc(ranked, func(a, b domain.Bid) int {
		switch {
		case outranks(a, b):
			return -1
		case outranks(b, a):
			return 1
		default:
			return 0
		}
	})
	return ranked
}

// MinimumBid is highest.Amount + MinimumIncrement, or the starting price when
// nothing has been bid yet.
func MinimumBid(auction domain.Auction, highest *domain.Bid) decimal.Decimal {
	if highest == nil {
		return auction.StartingPrice
	}
	return highest.Amount.Add(MinimumIncrement)
}

// MinimumAcceptableBid applies MinimumBid to a full bid list.
func MinimumAcceptableBid(auction domain.Auction, bids []domain.Bid) decimal.Decimal {
	return MinimumBid(auction, HighestBid(bids))
}

// ValidateBid decides whether amount may be bid on auction at now.
// A closed auction always wins over a low amount.
func ValidateBid(auction domain.Auction, highest *domain.Bid, amount decimal.Decimal, now time.Time) error {
	if auction.HasEnded(now) {
		return fmt.Errorf("auction %d ended at %s: %w", auction.AuctionID, auction.EndDateTime.UTC().Format(time.RFC3339), apperrors.ErrAuctionClosed)
	}
	minimum := MinimumBid(auction, highest)
	if amount.LessThan(minimum) {
		return apperrors.NewBidTooLowError(minimum)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: bid amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

// Validate is ValidateBid over a full bid list.
func Validate(auction domain.Auction, bids []domain.Bid, amount decimal.Decimal, now time.Time) error {
	return ValidateBid(auction, HighestBid(bids), amount, now)
}
