package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/auctionbay/internal/adapters/database/memory"
	"github.com/SscSPs/auctionbay/internal/apperrors"
	"github.com/SscSPs/auctionbay/internal/core/domain"
	portssvc "github.com/SscSPs/auctionbay/internal/core/ports/services"
	"github.com/SscSPs/auctionbay/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// BidPlacementTestSuite runs placement against the in-memory store.
type BidPlacementTestSuite struct {
	suite.Suite
	clock         *fakeClock
	auctions      *memory.AuctionStore
	notifications *memory.NotificationStore
	bids          portssvc.BidSvc
	listing       portssvc.ListingSvcFacade
	notifier      portssvc.NotificationSvcFacade
}

func (suite *BidPlacementTestSuite) SetupTest() {
	suite.clock = newFakeClock(baseTime)
	suite.auctions = memory.NewAuctionStore()
	suite.notifications = memory.NewNotificationStore()

	withClock := services.WithClock(suite.clock.Now)
	suite.notifier = services.NewNotificationService(suite.notifications, nil, withClock)
	suite.bids = services.NewBidService(suite.auctions, suite.notifier, withClock)
	suite.listing = services.NewListingService(suite.auctions, memory.NewUserDirectory(), services.DefaultListingConfig, withClock)
}

func (suite *BidPlacementTestSuite) newAuction(startingPrice int64, endIn time.Duration) domain.Auction {
	a := domain.Auction{
		Title:         "Vintage camera",
		StartingPrice: decimal.NewFromInt(startingPrice),
		StartDateTime: suite.clock.Now(),
		EndDateTime:   suite.clock.Now().Add(endIn),
		AuctionState:  domain.AuctionActive,
		AuditFields:   domain.AuditFields{CreatedAt: suite.clock.Now(), CreatedBy: "seller"},
	}
	suite.Require().NoError(suite.auctions.SaveAuction(context.Background(), &a))
	return a
}

func (suite *BidPlacementTestSuite) place(bidder string, auctionID int64, amount int64) (*domain.Bid, error) {
	suite.clock.Advance(time.Second)
	return suite.bids.PlaceBid(context.Background(), bidder, auctionID, decimal.NewFromInt(amount))
}

func (suite *BidPlacementTestSuite) unread(userID string) int {
	n, err := suite.notifier.UnreadCount(context.Background(), userID)
	suite.Require().NoError(err)
	return n
}

func (suite *BidPlacementTestSuite) stateFor(auctionID int64, viewer string) domain.ViewerState {
	view, err := suite.listing.GetAuction(context.Background(), auctionID, strPtr(viewer))
	suite.Require().NoError(err)
	return view.State
}

// --- Test Cases ---

func (suite *BidPlacementTestSuite) TestOpenAuctionScenario() {
	a := suite.newAuction(10, time.Hour)

	_, err := suite.place("A", a.AuctionID, 5)
	var tooLow *apperrors.BidTooLowError
	suite.Require().True(errors.As(err, &tooLow))
	suite.Equal("10", tooLow.Minimum.String())

	bid, err := suite.place("A", a.AuctionID, 10)
	suite.Require().NoError(err)
	suite.Equal("A", bid.BidderID)
	suite.NotZero(bid.BidID)

	view, err := suite.listing.GetAuction(context.Background(), a.AuctionID, nil)
	suite.Require().NoError(err)
	suite.Equal("10", view.CurrentHighestBid.String())

	_, err = suite.place("B", a.AuctionID, 10)
	suite.Require().True(errors.As(err, &tooLow))
	suite.Equal("11", tooLow.Minimum.String())

	_, err = suite.place("B", a.AuctionID, 15)
	suite.Require().NoError(err)

	suite.Equal(1, suite.unread("A"))
	suite.Equal(0, suite.unread("B"))
	list, err := suite.notifier.ListForUser(context.Background(), "A")
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal(a.AuctionID, list[0].AuctionID)
	suite.Equal(domain.NotificationOutbid, list[0].Kind)
	suite.Equal("Vintage camera", list[0].Title)
	suite.False(list[0].IsRead)

	suite.Equal(domain.StateOutbid, suite.stateFor(a.AuctionID, "A"))
	suite.Equal(domain.StateWinning, suite.stateFor(a.AuctionID, "B"))
}

func (suite *BidPlacementTestSuite) TestClosedAuctionScenario() {
	a := suite.newAuction(10, 10*time.Minute)
	_, err := suite.place("C", a.AuctionID, 50)
	suite.Require().NoError(err)

	// One hour after the end.
	suite.clock.Advance(70 * time.Minute)
	suite.Equal(domain.StateDone, suite.stateFor(a.AuctionID, "C"))

	won, err := suite.listing.ListWon(context.Background(), "C")
	suite.Require().NoError(err)
	suite.Require().Len(won, 1)
	suite.Equal(a.AuctionID, won[0].AuctionID)
	suite.Equal(domain.StateDone, won[0].State)

	visible, err := suite.listing.ListVisible(context.Background(), strPtr("C"), 1, 9)
	suite.Require().NoError(err)
	suite.Len(visible, 1, "still inside the grace window")

	suite.clock.Advance(24 * time.Hour)
	visible, err = suite.listing.ListVisible(context.Background(), strPtr("C"), 1, 9)
	suite.Require().NoError(err)
	suite.Empty(visible)
}

func (suite *BidPlacementTestSuite) TestBidAfterEndIsClosed() {
	a := suite.newAuction(10, time.Minute)
	suite.clock.Advance(time.Minute)

	_, err := suite.place("A", a.AuctionID, 1_000)

	suite.ErrorIs(err, apperrors.ErrAuctionClosed)
	bids, listErr := suite.auctions.ListBids(context.Background(), a.AuctionID)
	suite.Require().NoError(listErr)
	suite.Empty(bids)
}

func (suite *BidPlacementTestSuite) TestUnknownAuction() {
	_, err := suite.place("A", 404, 10)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BidPlacementTestSuite) TestSelfOutbidCreatesNoNotification() {
	a := suite.newAuction(10, time.Hour)

	_, err := suite.place("A", a.AuctionID, 10)
	suite.Require().NoError(err)
	_, err = suite.place("A", a.AuctionID, 20)
	suite.Require().NoError(err)

	suite.Equal(0, suite.unread("A"))
	suite.Equal(domain.StateWinning, suite.stateFor(a.AuctionID, "A"))
}

func (suite *BidPlacementTestSuite) TestOutbidNotifiesOnlyPreviousLeader() {
	a := suite.newAuction(10, time.Hour)

	for _, step := range []struct {
		bidder string
		amount int64
	}{{"A", 10}, {"B", 11}, {"C", 12}} {
		_, err := suite.place(step.bidder, a.AuctionID, step.amount)
		suite.Require().NoError(err)
	}

	suite.Equal(1, suite.unread("A"))
	suite.Equal(1, suite.unread("B"))
	suite.Equal(0, suite.unread("C"))
}

func (suite *BidPlacementTestSuite) TestAcceptedAmountsStrictlyIncrease() {
	a := suite.newAuction(10, time.Hour)

	for _, amount := range []int64{10, 10, 12, 11, 13, 13, 40, 41} {
		_, _ = suite.place("A", a.AuctionID, amount)
	}

	bids, err := suite.auctions.ListBids(context.Background(), a.AuctionID)
	suite.Require().NoError(err)
	var got []string
	for _, b := range bids {
		got = append(got, b.Amount.String())
	}
	suite.Equal([]string{"10", "12", "13", "40", "41"}, got)
}

func (suite *BidPlacementTestSuite) TestConcurrentEqualBidsAcceptOne() {
	a := suite.newAuction(10, time.Hour)
	_, err := suite.place("opener", a.AuctionID, 10)
	suite.Require().NoError(err)

	var (
		wg               sync.WaitGroup
		mu               sync.Mutex
		accepted, tooLow int
	)
	for _, bidder := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		wg.Add(1)
		go func(bidder string) {
			defer wg.Done()
			_, err := suite.bids.PlaceBid(context.Background(), bidder, a.AuctionID, decimal.NewFromInt(11))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				accepted++
			} else if errors.Is(err, apperrors.ErrBidTooLow) {
				tooLow++
			}
		}(bidder)
	}
	wg.Wait()

	suite.Equal(1, accepted)
	suite.Equal(7, tooLow)
	suite.Equal(1, suite.unread("opener"))
}

// --- Run Test Suite ---
func TestBidPlacement(t *testing.T) {
	suite.Run(t, new(BidPlacementTestSuite))
}

// --- Mock-backed cases ---

func TestPlaceBid_NotificationFailureDoesNotFailBid(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAuctionRepository)
	notifier := new(MockNotifier)
	svc := services.NewBidService(repo, notifier, services.WithClock(func() time.Time { return baseTime }))

	placement := &domain.BidPlacement{
		Auction:         domain.Auction{AuctionID: 1, Title: "Lamp"},
		Bid:             domain.Bid{BidID: 2, AuctionID: 1, BidderID: "B", Amount: decimal.NewFromInt(15)},
		PreviousHighest: &domain.Bid{BidID: 1, AuctionID: 1, BidderID: "A", Amount: decimal.NewFromInt(10)},
	}
	repo.On("InsertBid", ctx, int64(1), mock.Anything).Return(placement, nil).Once()
	notifier.On("Create", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == "A" && n.AuctionID == 1 && n.Kind == domain.NotificationOutbid && n.Title == "Lamp"
	})).Return(nil, errors.New("notifications table unavailable")).Once()

	bid, err := svc.PlaceBid(ctx, "B", 1, decimal.NewFromInt(15))

	assert.NoError(t, err)
	assert.Equal(t, int64(2), bid.BidID)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestPlaceBid_NotificationSurvivesCancelledRequest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	repo := new(MockAuctionRepository)
	notifier := new(MockNotifier)
	svc := services.NewBidService(repo, notifier)

	placement := &domain.BidPlacement{
		Auction:         domain.Auction{AuctionID: 1, Title: "Lamp"},
		Bid:             domain.Bid{BidID: 2, BidderID: "B"},
		PreviousHighest: &domain.Bid{BidID: 1, BidderID: "A"},
	}
	repo.On("InsertBid", ctx, int64(1), mock.Anything).Run(func(mock.Arguments) { cancel() }).Return(placement, nil).Once()
	notifier.On("Create", mock.MatchedBy(func(c context.Context) bool {
		_, bounded := c.Deadline()
		return c.Err() == nil && bounded
	}), mock.Anything).
		Return(&domain.Notification{NotificationID: 1}, nil).Once()

	_, err := svc.PlaceBid(ctx, "B", 1, decimal.NewFromInt(15))

	assert.NoError(t, err)
	notifier.AssertExpectations(t)
}

// blockingPublisher holds every publish until release is closed.
type blockingPublisher struct {
	started chan domain.Notification
	release chan struct{}
}

func (p *blockingPublisher) PublishOutbid(ctx context.Context, n domain.Notification) error {
	p.started <- n
	select {
	case <-p.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestPlaceBid_SlowPublisherDoesNotDelayBidder(t *testing.T) {
	clock := newFakeClock(baseTime)
	withClock := services.WithClock(clock.Now)
	auctions := memory.NewAuctionStore()
	publisher := &blockingPublisher{started: make(chan domain.Notification, 1), release: make(chan struct{})}
	defer close(publisher.release)

	notifier := services.NewNotificationService(memory.NewNotificationStore(), publisher, withClock)
	svc := services.NewBidService(auctions, notifier, withClock)

	auction := domain.Auction{
		Title:         "Lamp",
		StartingPrice: decimal.NewFromInt(10),
		StartDateTime: baseTime,
		EndDateTime:   baseTime.Add(time.Hour),
		AuditFields:   domain.AuditFields{CreatedAt: baseTime, CreatedBy: "seller"},
	}
	require.NoError(t, auctions.SaveAuction(context.Background(), &auction))

	_, err := svc.PlaceBid(context.Background(), "alice", auction.AuctionID, decimal.NewFromInt(10))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	started := time.Now()
	_, err = svc.PlaceBid(ctx, "bob", auction.AuctionID, decimal.NewFromInt(11))
	elapsed := time.Since(started)

	require.NoError(t, err)
	assert.Less(t, elapsed, 100*time.Millisecond, "bid returned only after the publisher")

	select {
	case n := <-publisher.started:
		assert.Equal(t, "alice", n.UserID)
	case <-time.After(2 * time.Second):
		t.Fatal("outbid event was never published")
	}
}

func TestPlaceBid_StoreErrorPropagates(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAuctionRepository)
	notifier := new(MockNotifier)
	svc := services.NewBidService(repo, notifier)

	repo.On("InsertBid", ctx, int64(1), mock.Anything).Return(nil, assert.AnError).Once()

	bid, err := svc.PlaceBid(ctx, "B", 1, decimal.NewFromInt(15))

	assert.Nil(t, bid)
	assert.ErrorIs(t, err, assert.AnError)
	notifier.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
