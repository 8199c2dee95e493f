package services

import (
	"context"

	"github.com/SscSPs/auctionbay/internal/core/domain"
	"github.com/SscSPs/auctionbay/internal/dto"
)

// AuctionWriterSvc defines the owner-side lifecycle of an auction
type AuctionWriterSvc interface {
	// CreateAuction persists a new Active auction owned by creatorUserID.
	CreateAuction(ctx context.Context, req dto.CreateAuctionRequest, creatorUserID string) (*domain.Auction, error)

	// UpdateAuction edits an auction. Only its creator may do so.
	UpdateAuction(ctx context.Context, auctionID int64, req dto.UpdateAuctionRequest, userID string) (*domain.Auction, error)

	// DeleteAuction removes an auction and its bids. Only its creator may do so.
	DeleteAuction(ctx context.Context, auctionID int64, userID string) error
}

// AuctionSvcFacade combines all auction-related service interfaces
type AuctionSvcFacade interface {
	AuctionWriterSvc
}
