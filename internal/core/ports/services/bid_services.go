package services

import (
	"context"

	"github.com/SscSPs/auctionbay/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BidSvc places bids.
type BidSvc interface {
	// PlaceBid validates and records a bid atomically with respect to every other
	// bid on the same auction. Errors match apperrors.ErrNotFound,
	// ErrAuctionClosed, ErrBidTooLow (as *apperrors.BidTooLowError) or ErrValidation.
	PlaceBid(ctx context.Context, bidderID string, auctionID int64, amount decimal.Decimal) (*domain.Bid, error)
}
