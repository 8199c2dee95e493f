package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/auctionbay/internal/apperrors"
	"github.com/SscSPs/auctionbay/internal/core/bidding"
	"github.com/SscSPs/auctionbay/internal/core/domain"
	portsrepo "github.com/SscSPs/auctionbay/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/auctionbay/internal/core/ports/services"
	"github.com/SscSPs/auctionbay/internal/utils/pagination"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// ListingConfig tunes the main listing.
type ListingConfig struct {
	// RecentlyClosedWindow keeps ended auctions visible to their bidders for this long.
	RecentlyClosedWindow time.Duration
	DefaultPageSize      int
	MaxPageSize          int
}

// DefaultListingConfig is a 24h grace window and pages of 9, at most 100.
var DefaultListingConfig = ListingConfig{
	RecentlyClosedWindow: 24 * time.Hour,
	DefaultPageSize:      9,
	MaxPageSize:          100,
}

// listingService implements the ListingSvcFacade interface
type listingService struct {
	BaseService
	auctionRepo portsrepo.AuctionRepositoryFacade
	users       portsrepo.UserDirectory
	cfg         ListingConfig
}

// NewListingService creates a listing service. users may be nil, in which case
// bid details carry no bidder profile.
func NewListingService(repo portsrepo.AuctionRepositoryFacade, users portsrepo.UserDirectory, cfg ListingConfig, options ...ServiceOption) portssvc.ListingSvcFacade {
	return &listingService{
		BaseService: newBaseService(options...),
		auctionRepo: repo,
		users:       users,
		cfg:         cfg,
	}
}

var _ portssvc.ListingSvcFacade = (*listingService)(nil)

func (s *listingService) ListVisible(ctx context.Context, viewerID *string, page, pageSize int) ([]domain.AuctionView, error) {
	window := pagination.Normalize(page, pageSize, s.cfg.DefaultPageSize, s.cfg.MaxPageSize)
	now := s.Now()

	auctions, err := s.auctionRepo.ListVisibleAuctions(ctx, portsrepo.VisibleAuctionsQuery{
		ViewerID:    viewerID,
		Now:         now,
		ClosedSince: now.Add(-s.cfg.RecentlyClosedWindow),
		Limit:       window.Limit(),
		Offset:      window.Offset(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list visible auctions",
			slog.Int("page", window.Page),
			slog.Int("page_size", window.PageSize))
		return nil, fmt.Errorf("failed to list visible auctions: %w", err)
	}
	return s.project(ctx, auctions, viewerID, now)
}

func (s *listingService) ListByCreator(ctx context.Context, userID string) ([]domain.AuctionView, error) {
	auctions, err := s.auctionRepo.ListAuctionsByCreator(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list auctions by creator",
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list auctions created by %s: %w", userID, err)
	}
	return s.project(ctx, auctions, &userID, s.Now())
}

func (s *listingService) ListBidding(ctx context.Context, userID string) ([]domain.AuctionView, error) {
	auctions, err := s.auctionRepo.ListAuctionsBidOnBy(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list auctions bid on",
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list auctions bid on by %s: %w", userID, err)
	}
	return s.project(ctx, auctions, &userID, s.Now())
}

func (s *listingService) ListWon(ctx context.Context, userID string) ([]domain.AuctionView, error) {
	now := s.Now()
	auctions, err := s.auctionRepo.ListAuctionsWonBy(ctx, userID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to list won auctions",
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list auctions won by %s: %w", userID, err)
	}
	return s.project(ctx, auctions, &userID, now)
}

func (s *listingService) GetAuction(ctx context.Context, auctionID int64, viewerID *string) (*domain.AuctionView, error) {
	auction, bids, err := s.load(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	view := bidding.View(*auction, bids, viewerID, s.Now())
	return &view, nil
}

func (s *listingService) GetAuctionDetail(ctx context.Context, auctionID int64, viewerID *string) (*domain.AuctionDetail, error) {
	auction, bids, err := s.load(ctx, auctionID)
	if err != nil {
		return nil, err
	}

	profiles := s.profiles(ctx, bids)
	ranked := bidding.RankBids(bids)
	detail := &domain.AuctionDetail{
		AuctionView: bidding.View(*auction, bids, viewerID, s.Now()),
		Bids: lo.Map(ranked, func(b domain.Bid, _ int) domain.BidView {
			p := profiles[b.BidderID]
			return domain.BidView{Bid: b, UserName: p.UserName, ProfilePictureURL: p.ProfilePictureURL}
		}),
	}
	return detail, nil
}

// load fetches an auction and its bids concurrently.
func (s *listingService) load(ctx context.Context, auctionID int64) (*domain.Auction, []domain.Bid, error) {
	var (
		auction *domain.Auction
		bids    []domain.Bid
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		auction, err = s.auctionRepo.FindAuctionByID(gctx, auctionID)
		return err
	})
	g.Go(func() error {
		var err error
		bids, err = s.auctionRepo.ListBids(gctx, auctionID)
		return err
	})
	if err := g.Wait(); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load auction",
				slog.Int64("auction_id", auctionID))
		}
		return nil, nil, err
	}
	return auction, bids, nil
}

// profiles resolves bidder display data. Lookup failures degrade to empty names.
func (s *listingService) profiles(ctx context.Context, bids []domain.Bid) map[string]domain.UserProfile {
	if s.users == nil || len(bids) == 0 {
		return nil
	}
	ids := lo.Uniq(lo.Map(bids, func(b domain.Bid, _ int) string { return b.BidderID }))
	profiles, err := s.users.FindProfilesByIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve bidder profiles",
			slog.Int("bidder_count", len(ids)))
		return nil
	}
	return profiles
}

// project attaches the viewer-relative state to each auction using one batched bid query.
func (s *listingService) project(ctx context.Context, auctions []domain.Auction, viewerID *string, now time.Time) ([]domain.AuctionView, error) {
	if len(auctions) == 0 {
		return []domain.AuctionView{}, nil
	}

	ids := lo.Map(auctions, func(a domain.Auction, _ int) int64 { return a.AuctionID })
	bidsByAuction, err := s.auctionRepo.ListBidsForAuctions(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to load bids for listing",
			slog.Int("auction_count", len(ids)))
		return nil, fmt.Errorf("failed to load bids for %d auctions: %w", len(ids), err)
	}

	return lo.Map(auctions, func(a domain.Auction, _ int) domain.AuctionView {
		return bidding.View(a, bidsByAuction[a.AuctionID], viewerID, now)
	}), nil
}
