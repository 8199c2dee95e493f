// Package memory provides process-local implementations of the repository
// ports. They back STORE_DRIVER=memory and the service tests.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/auctionbay/internal/apperrors"
	"github.com/SscSPs/auctionbay/internal/core/bidding"
	"github.com/SscSPs/auctionbay/internal/core/domain"
	portsrepo "github.com/SscSPs/auctionbay/internal/core/ports/repositories"
	"github.com/samber/lo"
)

// auctionEntry is one auction and its bids. mu serializes bid placement on the
// auction and guards every field.
type auctionEntry struct {
	mu      sync.Mutex
	auction domain.Auction
	bids    []domain.Bid
	deleted bool
}

func (e *auctionEntry) snapshot() (domain.Auction, []domain.Bid, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.auction, slices.Clone(e.bids), !e.deleted
}

// AuctionStore keeps auctions and bids in memory.
type AuctionStore struct {
	mu       sync.RWMutex // guards auctions
	auctions map[int64]*auctionEntry

	lastAuctionID atomic.Int64
	lastBidID     atomic.Int64
}

// NewAuctionStore creates an empty store.
func NewAuctionStore() *AuctionStore {
	return &AuctionStore{auctions: make(map[int64]*auctionEntry)}
}

var _ portsrepo.AuctionRepositoryFacade = (*AuctionStore)(nil)

func (s *AuctionStore) entry(auctionID int64) *auctionEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auctions[auctionID]
}

// snapshots returns a consistent copy of every live auction with its bids.
func (s *AuctionStore) snapshots() []auctionSnapshot {
	s.mu.RLock()
	entries := lo.Values(s.auctions)
	s.mu.RUnlock()

	out := make([]auctionSnapshot, 0, len(entries))
	for _, e := range entries {
		if a, bids, ok := e.snapshot(); ok {
			out = append(out, auctionSnapshot{auction: a, bids: bids})
		}
	}
	return out
}

type auctionSnapshot struct {
	auction domain.Auction
	bids    []domain.Bid
}

func (a auctionSnapshot) hasBidFrom(userID string) bool {
	return lo.ContainsBy(a.bids, func(b domain.Bid) bool { return b.BidderID == userID })
}

func auctionsOf(snaps []auctionSnapshot) []domain.Auction {
	return lo.Map(snaps, func(s auctionSnapshot, _ int) domain.Auction { return s.auction })
}

func (s *AuctionStore) SaveAuction(ctx context.Context, auction *domain.Auction) error {
	auction.AuctionID = s.lastAuctionID.Add(1)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.auctions[auction.AuctionID] = &auctionEntry{auction: *auction}
	return nil
}

func (s *AuctionStore) UpdateAuction(ctx context.Context, auction domain.Auction) error {
	e := s.entry(auction.AuctionID)
	if e == nil {
		return apperrors.ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deleted {
		return apperrors.ErrNotFound
	}
	e.auction = auction
	return nil
}

func (s *AuctionStore) DeleteAuction(ctx context.Context, auctionID int64) error {
	s.mu.Lock()
	e, ok := s.auctions[auctionID]
	delete(s.auctions, auctionID)
	s.mu.Unlock()
	if !ok {
		return apperrors.ErrNotFound
	}

	// A placement may still hold e.mu; it will see deleted and back off.
	e.mu.Lock()
	e.deleted = true
	e.bids = nil
	e.mu.Unlock()
	return nil
}

func (s *AuctionStore) FindAuctionByID(ctx context.Context, auctionID int64) (*domain.Auction, error) {
	e := s.entry(auctionID)
	if e == nil {
		return nil, apperrors.ErrNotFound
	}
	auction, _, ok := e.snapshot()
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &auction, nil
}

func (s *AuctionStore) ListVisibleAuctions(ctx context.Context, q portsrepo.VisibleAuctionsQuery) ([]domain.Auction, error) {
	visible := lo.Filter(s.snapshots(), func(a auctionSnapshot, _ int) bool {
		end := a.auction.EndDateTime
		if end.After(q.Now) {
			return true
		}
		return q.ViewerID != nil && end.After(q.ClosedSince) && a.hasBidFrom(*q.ViewerID)
	})
	slices.SortFunc(visible, func(a, b auctionSnapshot) int {
		return cmp.Or(a.auction.EndDateTime.Compare(b.auction.EndDateTime), cmp.Compare(a.auction.AuctionID, b.auction.AuctionID))
	})
	return page(auctionsOf(visible), q.Limit, q.Offset), nil
}

func (s *AuctionStore) ListAuctionsByCreator(ctx context.Context, userID string) ([]domain.Auction, error) {
	mine := lo.Filter(s.snapshots(), func(a auctionSnapshot, _ int) bool { return a.auction.IsOwnedBy(userID) })
	slices.SortFunc(mine, func(a, b auctionSnapshot) int {
		return cmp.Or(b.auction.CreatedAt.Compare(a.auction.CreatedAt), cmp.Compare(b.auction.AuctionID, a.auction.AuctionID))
	})
	return auctionsOf(mine), nil
}

func (s *AuctionStore) ListAuctionsBidOnBy(ctx context.Context, userID string) ([]domain.Auction, error) {
	bidOn := lo.Filter(s.snapshots(), func(a auctionSnapshot, _ int) bool {
		return !a.auction.IsOwnedBy(userID) && a.hasBidFrom(userID)
	})
	slices.SortFunc(bidOn, func(a, b auctionSnapshot) int {
		return cmp.Or(a.auction.EndDateTime.Compare(b.auction.EndDateTime), cmp.Compare(a.auction.AuctionID, b.auction.AuctionID))
	})
	return auctionsOf(bidOn), nil
}

func (s *AuctionStore) ListAuctionsWonBy(ctx context.Context, userID string, now time.Time) ([]domain.Auction, error) {
	won := lo.Filter(s.snapshots(), func(a auctionSnapshot, _ int) bool {
		if !a.auction.HasEnded(now) {
			return false
		}
		highest := bidding.HighestBid(a.bids)
		return highest != nil && highest.BidderID == userID
	})
	slices.SortFunc(won, func(a, b auctionSnapshot) int {
		return cmp.Or(b.auction.EndDateTime.Compare(a.auction.EndDateTime), cmp.Compare(b.auction.AuctionID, a.auction.AuctionID))
	})
	return auctionsOf(won), nil
}

func (s *AuctionStore) ListBids(ctx context.Context, auctionID int64) ([]domain.Bid, error) {
	e := s.entry(auctionID)
	if e == nil {
		return []domain.Bid{}, nil
	}
	_, bids, _ := e.snapshot()
	sortByCreation(bids)
	return bids, nil
}

func (s *AuctionStore) ListBidsForAuctions(ctx context.Context, auctionIDs []int64) (map[int64][]domain.Bid, error) {
	out := make(map[int64][]domain.Bid, len(auctionIDs))
	for _, id := range lo.Uniq(auctionIDs) {
		bids, err := s.ListBids(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(bids) > 0 {
			out[id] = bids
		}
	}
	return out, nil
}

// InsertBid holds the auction's lock across load, decide and append.
func (s *AuctionStore) InsertBid(ctx context.Context, auctionID int64, decide domain.BidDecider) (*domain.BidPlacement, error) {
	e := s.entry(auctionID)
	if e == nil {
		return nil, fmt.Errorf("auction %d: %w", auctionID, apperrors.ErrNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deleted {
		return nil, fmt.Errorf("auction %d: %w", auctionID, apperrors.ErrNotFound)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var previous *domain.Bid
	if h := bidding.HighestBid(e.bids); h != nil {
		prev := *h
		previous = &prev
	}

	bid, err := decide(e.auction, previous)
	if err != nil {
		return nil, err
	}
	bid.BidID = s.lastBidID.Add(1)
	bid.AuctionID = auctionID
	e.bids = append(e.bids, bid)

	return &domain.BidPlacement{Auction: e.auction, Bid: bid, PreviousHighest: previous}, nil
}

func sortByCreation(bids []domain.Bid) {
	slices.SortStableFunc(bids, func(a, b domain.Bid) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.BidID, b.BidID))
	})
}

func page[T any](items []T, limit, offset int) []T {
	if offset < 0 || offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
