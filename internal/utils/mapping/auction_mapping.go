package mapping

import (
	"github.com/SscSPs/auctionbay/internal/core/domain"
	"github.com/SscSPs/auctionbay/internal/models"
	"github.com/samber/lo"
)

// ToModelAuction converts a domain Auction to a model Auction
func ToModelAuction(d domain.Auction) models.Auction {
	return models.Auction{
		AuctionID:     d.AuctionID,
		Title:         d.Title,
		Description:   d.Description,
		StartingPrice: d.StartingPrice,
		StartDateTime: d.StartDateTime,
		EndDateTime:   d.EndDateTime,
		AuctionState:  string(d.AuctionState),
		MainImageURL:  d.MainImageURL,
		ThumbnailURL:  d.ThumbnailURL,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAuction converts a model Auction to a domain Auction. Times come back in UTC.
func ToDomainAuction(m models.Auction) domain.Auction {
	audit := ToDomainAuditFields(m.AuditFields)
	audit.CreatedAt = audit.CreatedAt.UTC()
	if audit.UpdatedAt != nil {
		updated := audit.UpdatedAt.UTC()
		audit.UpdatedAt = &updated
	}
	return domain.Auction{
		AuctionID:     m.AuctionID,
		Title:         m.Title,
		Description:   m.Description,
		StartingPrice: m.StartingPrice,
		StartDateTime: m.StartDateTime.UTC(),
		EndDateTime:   m.EndDateTime.UTC(),
		AuctionState:  domain.AuctionState(m.AuctionState),
		MainImageURL:  m.MainImageURL,
		ThumbnailURL:  m.ThumbnailURL,
		AuditFields:   audit,
	}
}

// ToDomainAuctionSlice converts a slice of model Auctions to a slice of domain Auctions
func ToDomainAuctionSlice(ms []models.Auction) []domain.Auction {
	return lo.Map(ms, func(m models.Auction, _ int) domain.Auction { return ToDomainAuction(m) })
}

// ToModelBid converts a domain Bid to a model Bid
func ToModelBid(d domain.Bid) models.Bid {
	return models.Bid{
		BidID:     d.BidID,
		AuctionID: d.AuctionID,
		BidderID:  d.BidderID,
		Amount:    d.Amount,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainBid converts a model Bid to a domain Bid
func ToDomainBid(m models.Bid) domain.Bid {
	return domain.Bid{
		BidID:     m.BidID,
		AuctionID: m.AuctionID,
		BidderID:  m.BidderID,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

// ToDomainBidSlice converts a slice of model Bids to a slice of domain Bids
func ToDomainBidSlice(ms []models.Bid) []domain.Bid {
	return lo.Map(ms, func(m models.Bid, _ int) domain.Bid { return ToDomainBid(m) })
}
