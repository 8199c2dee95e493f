package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/auctionbay/internal/apperrors"
	"github.com/SscSPs/auctionbay/internal/core/bidding"
	"github.com/SscSPs/auctionbay/internal/core/domain"
	portsrepo "github.com/SscSPs/auctionbay/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/auctionbay/internal/core/ports/services"
	"github.com/SscSPs/auctionbay/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// outbidNotifyTimeout bounds storing the outbid notification after a bid commits.
const outbidNotifyTimeout = 5 * time.Second

// bidService implements the BidSvc interface
type bidService struct {
	BaseService
	bidRepo  portsrepo.BidWriter
	notifier portssvc.NotificationWriterSvc
}

// NewBidService creates a bid service. notifier receives outbid notifications after each accepted bid.
func NewBidService(repo portsrepo.BidWriter, notifier portssvc.NotificationWriterSvc, options ...ServiceOption) portssvc.BidSvc {
	return &bidService{
		BaseService: newBaseService(options...),
		bidRepo:     repo,
		notifier:    notifier,
	}
}

var _ portssvc.BidSvc = (*bidService)(nil)

func (s *bidService) PlaceBid(ctx context.Context, bidderID string, auctionID int64, amount decimal.Decimal) (*domain.Bid, error) {
	started := time.Now()
	placement, err := s.bidRepo.InsertBid(ctx, auctionID, func(auction domain.Auction, highest *domain.Bid) (domain.Bid, error) {
		now := s.Now()
		if err := bidding.ValidateBid(auction, highest, amount, now); err != nil {
			return domain.Bid{}, err
		}
		return domain.Bid{
			AuctionID: auction.AuctionID,
			BidderID:  bidderID,
			Amount:    amount,
			CreatedAt: now,
		}, nil
	})
	metrics.BidPlacementDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.BidsPlaced.WithLabelValues(bidOutcome(err)).Inc()
		s.logRejection(ctx, err, bidderID, auctionID, amount)
		return nil, err
	}
	metrics.BidsPlaced.WithLabelValues(metrics.BidAccepted).Inc()

	s.LogInfo(ctx, "Bid placed successfully",
		slog.Int64("auction_id", auctionID),
		slog.Int64("bid_id", placement.Bid.BidID),
		slog.String("bidder_id", bidderID),
		slog.String("amount", amount.String()))

	s.notifyOutbid(ctx, placement)
	return &placement.Bid, nil
}

// notifyOutbid tells the previous leader they lost the lead. The bid is already
// committed, so failures are only logged.
func (s *bidService) notifyOutbid(ctx context.Context, placement *domain.BidPlacement) {
	prev := placement.PreviousHighest
	if prev == nil || prev.BidderID == placement.Bid.BidderID || s.notifier == nil {
		return
	}

	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), outbidNotifyTimeout)
	defer cancel()

	_, err := s.notifier.Create(notifyCtx, domain.Notification{
		UserID:    prev.BidderID,
		AuctionID: placement.Auction.AuctionID,
		Kind:      domain.NotificationOutbid,
		Title:     placement.Auction.Title,
	})
	if err != nil {
		metrics.Notifications.WithLabelValues(metrics.NotificationFailed).Inc()
		s.LogError(ctx, err, "Failed to create outbid notification",
			slog.Int64("auction_id", placement.Auction.AuctionID),
			slog.String("recipient_id", prev.BidderID))
	}
}

func (s *bidService) logRejection(ctx context.Context, err error, bidderID string, auctionID int64, amount decimal.Decimal) {
	attrs := []any{
		slog.Int64("auction_id", auctionID),
		slog.String("bidder_id", bidderID),
		slog.String("amount", amount.String()),
	}
	if bidOutcome(err) == metrics.BidError {
		s.LogError(ctx, err, "Failed to place bid", attrs...)
		return
	}
	s.LogDebug(ctx, "Bid rejected", append(attrs, slog.String("reason", err.Error()))...)
}

func bidOutcome(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrBidTooLow):
		return metrics.BidTooLow
	case errors.Is(err, apperrors.ErrAuctionClosed):
		return metrics.BidAuctionClosed
	case errors.Is(err, apperrors.ErrNotFound):
		return metrics.BidNotFound
	case errors.Is(err, apperrors.ErrValidation):
		return metrics.BidInvalid
	default:
		return metrics.BidError
	}
}
