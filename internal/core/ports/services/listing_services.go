package services

import (
	"context"

	"github.com/SscSPs/auctionbay/internal/core/domain"
)

// ListingSvcFacade defines the read side: auctions projected for a viewer
type ListingSvcFacade interface {
	// ListVisible returns one page of open auctions plus the viewer's recently closed ones.
	ListVisible(ctx context.Context, viewerID *string, page, pageSize int) ([]domain.AuctionView, error)

	// ListByCreator returns the auctions userID created, newest first.
	ListByCreator(ctx context.Context, userID string) ([]domain.AuctionView, error)

	// ListBidding returns other people's auctions userID has bid on, soonest-ending first.
	ListBidding(ctx context.Context, userID string) ([]domain.AuctionView, error)

	// ListWon returns ended auctions whose highest bid is userID's.
	ListWon(ctx context.Context, userID string) ([]domain.AuctionView, error)

	// GetAuction returns a single projected auction.
	GetAuction(ctx context.Context, auctionID int64, viewerID *string) (*domain.AuctionView, error)

	// GetAuctionDetail returns a projected auction with its bids, highest first.
	GetAuctionDetail(ctx context.Context, auctionID int64, viewerID *string) (*domain.AuctionDetail, error)
}
