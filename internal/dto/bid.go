package dto

import (
	"time"

	"github.com/SscSPs/auctionbay/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PlaceBidRequest defines the data needed to place a bid.
type PlaceBidRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"money"`
}

// BidResponse defines the data returned for a placed bid.
type BidResponse struct {
	BidID     int64           `json:"bidID"`
	AuctionID int64           `json:"auctionID"`
	BidderID  string          `json:"bidderID"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdDateTime"`
}

// BidDetailResponse is a bid as shown on the auction detail page.
type BidDetailResponse struct {
	Amount            decimal.Decimal `json:"amount"`
	CreatedAt         time.Time       `json:"createdDateTime"`
	UserName          string          `json:"userName"`
	ProfilePictureURL string          `json:"profilePictureUrl,omitempty"`
}

// BidRejectionResponse is returned when a bid is below the minimum.
type BidRejectionResponse struct {
	Error      string          `json:"error"`
	MinimumBid decimal.Decimal `json:"minimumBid"`
}

// ToBidResponse converts a domain.Bid to BidResponse DTO
func ToBidResponse(b *domain.Bid) BidResponse {
	return BidResponse{
		BidID:     b.BidID,
		AuctionID: b.AuctionID,
		BidderID:  b.BidderID,
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt,
	}
}

// ToBidDetailResponse converts a domain.BidView to BidDetailResponse DTO
func ToBidDetailResponse(b domain.BidView) BidDetailResponse {
	return BidDetailResponse{
		Amount:            b.Amount,
		CreatedAt:         b.CreatedAt,
		UserName:          b.UserName,
		ProfilePictureURL: b.ProfilePictureURL,
	}
}
