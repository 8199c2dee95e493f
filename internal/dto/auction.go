package dto

import (
	"time"

	"github.com/SscSPs/auctionbay/internal/core/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CreateAuctionRequest defines the data needed to create a new auction.
type CreateAuctionRequest struct {
	Title         string          `json:"title" binding:"required,max=200"`
	Description   string          `json:"description" binding:"required"`
	StartingPrice decimal.Decimal `json:"startingPrice" binding:"money"`
	StartDateTime *time.Time      `json:"startDateTime"` // Optional, defaults to now
	EndDateTime   time.Time       `json:"endDateTime" binding:"required"`
	MainImageURL  string          `json:"mainImageUrl" binding:"omitempty,max=2048"`
	ThumbnailURL  string          `json:"thumbnailUrl" binding:"omitempty,max=2048"`
}

// UpdateAuctionRequest defines the owner-editable fields of an auction.
type UpdateAuctionRequest struct {
	Title         string          `json:"title" binding:"required,max=200"`
	Description   string          `json:"description" binding:"required"`
	StartingPrice decimal.Decimal `json:"startingPrice" binding:"money"`
	StartDateTime time.Time       `json:"startDateTime" binding:"required"`
	EndDateTime   time.Time       `json:"endDateTime" binding:"required,gtfield=StartDateTime"`
	MainImageURL  string          `json:"mainImageUrl" binding:"omitempty,max=2048"`
	ThumbnailURL  string          `json:"thumbnailUrl" binding:"omitempty,max=2048"`
}

// ListAuctionsParams defines query parameters for the main listing.
type ListAuctionsParams struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"pageSize,default=9"`
}

// AuctionResponse defines the data returned for an auction card.
type AuctionResponse struct {
	AuctionID         int64               `json:"auctionID"`
	Title             string              `json:"title"`
	Description       string              `json:"description"`
	StartingPrice     decimal.Decimal     `json:"startingPrice"`
	StartDateTime     time.Time           `json:"startDateTime"`
	EndDateTime       time.Time           `json:"endDateTime"`
	AuctionState      domain.AuctionState `json:"auctionState"`
	CreatedBy         string              `json:"createdBy"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         *time.Time          `json:"updatedAt,omitempty"`
	MainImageURL      string              `json:"mainImageUrl"`
	ThumbnailURL      string              `json:"thumbnailUrl"`
	State             domain.ViewerState  `json:"state,omitempty"`
	CurrentHighestBid decimal.Decimal     `json:"currentHighestBid"`
	TimeLeftSeconds   int64               `json:"timeLeftSeconds"`
}

// AuctionDetailResponse is an auction card plus its bids, highest first.
type AuctionDetailResponse struct {
	AuctionResponse
	Bids []BidDetailResponse `json:"bids"`
}

// ToAuctionResponse converts a bare domain.Auction (no projection) to AuctionResponse DTO
func ToAuctionResponse(a *domain.Auction) AuctionResponse {
	return AuctionResponse{
		AuctionID:         a.AuctionID,
		Title:             a.Title,
		Description:       a.Description,
		StartingPrice:     a.StartingPrice,
		StartDateTime:     a.StartDateTime,
		EndDateTime:       a.EndDateTime,
		AuctionState:      a.AuctionState,
		CreatedBy:         a.CreatedBy,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
		MainImageURL:      a.MainImageURL,
		ThumbnailURL:      a.ThumbnailURL,
		CurrentHighestBid: a.StartingPrice,
	}
}

// ToAuctionViewResponse converts a projected auction to AuctionResponse DTO
func ToAuctionViewResponse(v *domain.AuctionView) AuctionResponse {
	res := ToAuctionResponse(&v.Auction)
	res.State = v.State
	res.CurrentHighestBid = v.CurrentHighestBid
	res.TimeLeftSeconds = int64(v.TimeLeft.Seconds())
	return res
}

// ToListAuctionResponse converts a slice of projected auctions to a slice of AuctionResponse DTOs
func ToListAuctionResponse(views []domain.AuctionView) []AuctionResponse {
	return lo.Map(views, func(v domain.AuctionView, _ int) AuctionResponse {
		return ToAuctionViewResponse(&v)
	})
}

// ToAuctionDetailResponse converts a domain.AuctionDetail to AuctionDetailResponse DTO
func ToAuctionDetailResponse(d *domain.AuctionDetail) AuctionDetailResponse {
	return AuctionDetailResponse{
		AuctionResponse: ToAuctionViewResponse(&d.AuctionView),
		Bids: lo.Map(d.Bids, func(b domain.BidView, _ int) BidDetailResponse {
			return ToBidDetailResponse(b)
		}),
	}
}
