package handlers_test

import (
	"context"

	"github.com/SscSPs/auctionbay/internal/core/domain"
	portssvc "github.com/SscSPs/auctionbay/internal/core/ports/services"
	"github.com/SscSPs/auctionbay/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuctionService ---
type MockAuctionService struct {
	mock.Mock
}

func (m *MockAuctionService) CreateAuction(ctx context.Context, req dto.CreateAuctionRequest, creatorUserID string) (*domain.Auction, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Auction), args.Error(1)
}
func (m *MockAuctionService) UpdateAuction(ctx context.Context, auctionID int64, req dto.UpdateAuctionRequest, userID string) (*domain.Auction, error) {
	args := m.Called(ctx, auctionID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Auction), args.Error(1)
}
func (m *MockAuctionService) DeleteAuction(ctx context.Context, auctionID int64, userID string) error {
	args := m.Called(ctx, auctionID, userID)
	return args.Error(0)
}

var _ portssvc.AuctionSvcFacade = (*MockAuctionService)(nil)

// --- Mock BidService ---
type MockBidService struct {
	mock.Mock
}

func (m *MockBidService) PlaceBid(ctx context.Context, bidderID string, auctionID int64, amount decimal.Decimal) (*domain.Bid, error) {
	args := m.Called(ctx, bidderID, auctionID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bid), args.Error(1)
}

var _ portssvc.BidSvc = (*MockBidService)(nil)

// --- Mock ListingService ---
type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) views(args mock.Arguments) ([]domain.AuctionView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuctionView), args.Error(1)
}
func (m *MockListingService) ListVisible(ctx context.Context, viewerID *string, page, pageSize int) ([]domain.AuctionView, error) {
	return m.views(m.Called(ctx, viewerID, page, pageSize))
}
func (m *MockListingService) ListByCreator(ctx context.Context, userID string) ([]domain.AuctionView, error) {
	return m.views(m.Called(ctx, userID))
}
func (m *MockListingService) ListBidding(ctx context.Context, userID string) ([]domain.AuctionView, error) {
	return m.views(m.Called(ctx, userID))
}
func (m *MockListingService) ListWon(ctx context.Context, userID string) ([]domain.AuctionView, error) {
	return m.views(m.Called(ctx, userID))
}
func (m *MockListingService) GetAuction(ctx context.Context, auctionID int64, viewerID *string) (*domain.AuctionView, error) {
	args := m.Called(ctx, auctionID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuctionView), args.Error(1)
}
func (m *MockListingService) GetAuctionDetail(ctx context.Context, auctionID int64, viewerID *string) (*domain.AuctionDetail, error) {
	args := m.Called(ctx, auctionID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuctionDetail), args.Error(1)
}

var _ portssvc.ListingSvcFacade = (*MockListingService)(nil)

// --- Mock NotificationService ---
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}
func (m *MockNotificationService) Create(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}
func (m *MockNotificationService) MarkRead(ctx context.Context, userID string, notificationID int64) error {
	return m.Called(ctx, userID, notificationID).Error(0)
}
func (m *MockNotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

var _ portssvc.NotificationSvcFacade = (*MockNotificationService)(nil)
