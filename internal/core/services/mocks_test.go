package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/auctionbay/internal/core/domain"
	portsrepo "github.com/SscSPs/auctionbay/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuctionRepository ---
type MockAuctionRepository struct {
	mock.Mock
}

func (m *MockAuctionRepository) FindAuctionByID(ctx context.Context, auctionID int64) (*domain.Auction, error) {
	args := m.Called(ctx, auctionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Auction), args.Error(1)
}

func (m *MockAuctionRepository) ListVisibleAuctions(ctx context.Context, q portsrepo.VisibleAuctionsQuery) ([]domain.Auction, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Auction), args.Error(1)
}

func (m *MockAuctionRepository) ListAuctionsByCreator(ctx context.Context, userID string) ([]domain.Auction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Auction), args.Error(1)
}

func (m *MockAuctionRepository) ListAuctionsBidOnBy(ctx context.Context, userID string) ([]domain.Auction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Auction), args.Error(1)
}

func (m *MockAuctionRepository) ListAuctionsWonBy(ctx context.Context, userID string, now time.Time) ([]domain.Auction, error) {
	args := m.Called(ctx, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Auction), args.Error(1)
}

func (m *MockAuctionRepository) SaveAuction(ctx context.Context, auction *domain.Auction) error {
	args := m.Called(ctx, auction)
	return args.Error(0)
}

func (m *MockAuctionRepository) UpdateAuction(ctx context.Context, auction domain.Auction) error {
	args := m.Called(ctx, auction)
	return args.Error(0)
}

func (m *MockAuctionRepository) DeleteAuction(ctx context.Context, auctionID int64) error {
	args := m.Called(ctx, auctionID)
	return args.Error(0)
}

func (m *MockAuctionRepository) ListBids(ctx context.Context, auctionID int64) ([]domain.Bid, error) {
	args := m.Called(ctx, auctionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bid), args.Error(1)
}

func (m *MockAuctionRepository) ListBidsForAuctions(ctx context.Context, auctionIDs []int64) (map[int64][]domain.Bid, error) {
	args := m.Called(ctx, auctionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]domain.Bid), args.Error(1)
}

func (m *MockAuctionRepository) InsertBid(ctx context.Context, auctionID int64, decide domain.BidDecider) (*domain.BidPlacement, error) {
	args := m.Called(ctx, auctionID, decide)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BidPlacement), args.Error(1)
}

// --- Mock NotificationRepository ---
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) ListNotificationsByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnreadNotifications(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification *domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, userID string, notificationID int64) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock NotificationWriterSvc ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Create(ctx context.Context, notification domain.Notification) (*domain.Notification, error) {
	args := m.Called(ctx, notification)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotifier) MarkRead(ctx context.Context, userID string, notificationID int64) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

func (m *MockNotifier) MarkAllRead(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock OutbidPublisher ---
type MockOutbidPublisher struct {
	mock.Mock
}

func (m *MockOutbidPublisher) PublishOutbid(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

// --- Mock UserDirectory ---
type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) FindProfilesByIDs(ctx context.Context, userIDs []string) (map[string]domain.UserProfile, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.UserProfile), args.Error(1)
}

// fakeClock is a settable clock for WithClock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{now: t}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }
