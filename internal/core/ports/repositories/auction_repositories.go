package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/auctionbay/internal/core/domain"
)

// VisibleAuctionsQuery selects the auctions shown in the main listing.
type VisibleAuctionsQuery struct {
	// ViewerID is nil for anonymous viewers.
	ViewerID *string
	Now      time.Time
	// ClosedSince is the start of the grace window: auctions that ended after it
	// (and at or before Now) stay visible to viewers who bid on them.
	ClosedSince time.Time
	Limit       int
	Offset      int
}

// AuctionReader defines read operations for auction data
type AuctionReader interface {
	// FindAuctionByID retrieves a specific auction by its unique identifier.
	FindAuctionByID(ctx context.Context, auctionID int64) (*domain.Auction, error)

	// ListVisibleAuctions retrieves open auctions plus the viewer's recently closed ones, soonest-ending first.
	ListVisibleAuctions(ctx context.Context, q VisibleAuctionsQuery) ([]domain.Auction, error)

	// ListAuctionsByCreator retrieves all auctions created by a user, newest first.
	ListAuctionsByCreator(ctx context.Context, userID string) ([]domain.Auction, error)

	// ListAuctionsBidOnBy retrieves auctions not created by userID that userID has bid on, soonest-ending first.
	ListAuctionsBidOnBy(ctx context.Context, userID string) ([]domain.Auction, error)

	// ListAuctionsWonBy retrieves auctions ended at or before now whose highest bid belongs to userID, newest-ended first.
	ListAuctionsWonBy(ctx context.Context, userID string, now time.Time) ([]domain.Auction, error)
}

// AuctionWriter defines write operations for auction data
type AuctionWriter interface {
	// SaveAuction persists a new auction and sets its AuctionID.
	SaveAuction(ctx context.Context, auction *domain.Auction) error

	// UpdateAuction updates the owner-editable fields of an auction.
	UpdateAuction(ctx context.Context, auction domain.Auction) error

	// DeleteAuction removes an auction together with its bids.
	DeleteAuction(ctx context.Context, auctionID int64) error
}

// BidReader defines read operations for bid data
type BidReader interface {
	// ListBids retrieves the bids of an auction ordered by creation time.
	ListBids(ctx context.Context, auctionID int64) ([]domain.Bid, error)

	// ListBidsForAuctions retrieves bids for several auctions, grouped by auction ID.
	ListBidsForAuctions(ctx context.Context, auctionIDs []int64) (map[int64][]domain.Bid, error)
}

// BidWriter defines the race-free bid insert.
type BidWriter interface {
	// InsertBid locks the auction exclusively, loads it and its current highest
	// bid, asks decide for the bid to persist and inserts it. Nothing is written
	// when decide returns an error. Returns ErrNotFound if the auction is absent.
	InsertBid(ctx context.Context, auctionID int64, decide domain.BidDecider) (*domain.BidPlacement, error)
}

// AuctionRepositoryFacade combines all auction-related repository interfaces
// This is a facade for clients that need access to all operations
type AuctionRepositoryFacade interface {
	AuctionReader
	AuctionWriter
	BidReader
	BidWriter
}
