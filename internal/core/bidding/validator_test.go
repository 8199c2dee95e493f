package bidding_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/auctionbay/internal/apperrors"
	"github.com/SscSPs/auctionbay/internal/core/bidding"
	"github.com/SscSPs/auctionbay/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func openAuction(startingPrice int64) domain.Auction {
	return domain.Auction{
		AuctionID:     1,
		Title:         "Vintage camera",
		StartingPrice: dec(startingPrice),
		StartDateTime: now.Add(-time.Hour),
		EndDateTime:   now.Add(time.Hour),
		AuditFields:   domain.AuditFields{CreatedBy: "seller"},
	}
}

func bid(id int64, bidder string, amount int64, at time.Time) domain.Bid {
	return domain.Bid{BidID: id, AuctionID: 1, BidderID: bidder, Amount: dec(amount), CreatedAt: at}
}

func TestHighestBid(t *testing.T) {
	t0 := now.Add(-30 * time.Minute)

	tests := []struct {
		name   string
		bids   []domain.Bid
		wantID int64
	}{
		{name: "no bids", bids: nil, wantID: 0},
		{name: "single bid", bids: []domain.Bid{bid(1, "a", 10, t0)}, wantID: 1},
		{name: "max amount wins regardless of order", bids: []domain.Bid{bid(1, "a", 10, t0), bid(2, "b", 30, t0.Add(time.Minute)), bid(3, "a", 20, t0.Add(2*time.Minute))}, wantID: 2},
		{name: "equal amounts go to earliest", bids: []domain.Bid{bid(7, "b", 15, t0.Add(time.Minute)), bid(9, "a", 15, t0)}, wantID: 9},
		{name: "equal amount and time go to lowest id", bids: []domain.Bid{bid(5, "b", 15, t0), bid(4, "a", 15, t0)}, wantID: 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := bidding.HighestBid(tc.bids)
			if tc.wantID == 0 {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.wantID, got.BidID)
		})
	}
}

func TestRankBids(t *testing.T) {
	t0 := now.Add(-30 * time.Minute)
	bids := []domain.Bid{
		bid(1, "a", 10, t0),
		bid(2, "b", 20, t0.Add(time.Minute)),
		bid(3, "c", 20, t0.Add(2*time.Minute)),
		bid(4, "a", 15, t0.Add(3*time.Minute)),
	}

	ranked := bidding.RankBids(bids)

	ids := make([]int64, 0, len(ranked))
	for _, b := range ranked {
		ids = append(ids, b.BidID)
	}
	assert.Equal(t, []int64{2, 3, 4, 1}, ids)
	assert.Equal(t, int64(1), bids[0].BidID, "input left untouched")
}

func TestMinimumAcceptableBid(t *testing.T) {
	auction := openAuction(10)

	assert.True(t, bidding.MinimumAcceptableBid(auction, nil).Equal(dec(10)), "no bids: starting price")

	bids := []domain.Bid{bid(1, "a", 10, now.Add(-time.Minute)), bid(2, "b", 15, now)}
	assert.True(t, bidding.MinimumAcceptableBid(auction, bids).Equal(dec(16)), "highest + 1")

	fractional := []domain.Bid{{BidID: 3, BidderID: "c", Amount: decimal.RequireFromString("12.50"), CreatedAt: now}}
	assert.True(t, bidding.MinimumAcceptableBid(auction, fractional).Equal(decimal.RequireFromString("13.50")))
}

func TestValidateBid(t *testing.T) {
	auction := openAuction(10)
	highest := bid(1, "a", 10, now.Add(-time.Minute))

	closed := openAuction(10)
	closed.EndDateTime = now

	free := openAuction(0)

	tests := []struct {
		name        string
		auction     domain.Auction
		highest     *domain.Bid
		amount      decimal.Decimal
		wantErr     error
		wantMinimum string
	}{
		{name: "first bid at starting price", auction: auction, amount: dec(10)},
		{name: "first bid below starting price", auction: auction, amount: dec(5), wantErr: apperrors.ErrBidTooLow, wantMinimum: "10"},
		{name: "equal to highest is too low", auction: auction, highest: &highest, amount: dec(10), wantErr: apperrors.ErrBidTooLow, wantMinimum: "11"},
		{name: "highest plus one accepted", auction: auction, highest: &highest, amount: dec(11)},
		{name: "no maximum", auction: auction, highest: &highest, amount: dec(1_000_000)},
		{name: "ended exactly now is closed", auction: closed, amount: dec(100), wantErr: apperrors.ErrAuctionClosed},
		{name: "closed wins over too low", auction: closed, highest: &highest, amount: dec(1), wantErr: apperrors.ErrAuctionClosed},
		{name: "zero bid on free auction rejected", auction: free, amount: dec(0), wantErr: apperrors.ErrValidation},
		{name: "positive bid on free auction accepted", auction: free, amount: decimal.RequireFromString("0.01")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := bidding.ValidateBid(tc.auction, tc.highest, tc.amount, now)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
			if tc.wantMinimum != "" {
				var tooLow *apperrors.BidTooLowError
				require.True(t, errors.As(err, &tooLow))
				assert.Equal(t, tc.wantMinimum, tooLow.Minimum.String())
				assert.Contains(t, err.Error(), tc.wantMinimum)
			}
		})
	}
}

func TestValidate_UsesHighestOfList(t *testing.T) {
	auction := openAuction(10)
	bids := []domain.Bid{bid(1, "a", 10, now.Add(-2*time.Minute)), bid(2, "b", 15, now.Add(-time.Minute))}

	assert.ErrorIs(t, bidding.Validate(auction, bids, dec(15), now), apperrors.ErrBidTooLow)
	assert.NoError(t, bidding.Validate(auction, bids, dec(16), now))
}
