package bidding

import (
	"time"

	"github.com/SscSPs/auctionbay/internal/core/domain"
)

// Project derives the viewer-relative state of an auction from a snapshot of its
// bids and a wall-clock reading. viewerID is nil for anonymous viewers.
func Project(auction domain.Auction, bids []domain.Bid, viewerID *string, now time.Time) domain.Projection {
	highest := HighestBid(bids)

	p := domain.Projection{
		State:             domain.StateInProgress,
		CurrentHighestBid: auction.StartingPrice,
	}
	if highest != nil {
		p.CurrentHighestBid = highest.Amount
	}
	if left := auction.EndDateTime.Sub(now); left > 0 {
		p.TimeLeft = left
	}

	switch {
	case auction.HasEnded(now):
		p.State = domain.StateDone
	case viewerID == nil:
	case !hasBidFrom(bids, *viewerID):
	case highest.BidderID == *viewerID:
		p.State = domain.StateWinning
	default:
		p.State = domain.StateOutbid
	}
	return p
}

// View wraps Project into an AuctionView.
func View(auction domain.Auction, bids []domain.Bid, viewerID *string, now time.Time) domain.AuctionView {
	return domain.AuctionView{Auction: auction, Projection: Project(auction, bids, viewerID, now)}
}

func hasBidFrom(bids []domain.Bid, userID string) bool {
	for _, b := range bids {
		if b.BidderID == userID {
			return true
		}
	}
	return false
}
