package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/auctionbay/internal/core/domain"
	"github.com/SscSPs/auctionbay/internal/core/ports/events"
	portsrepo "github.com/SscSPs/auctionbay/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/auctionbay/internal/core/ports/services"
	"github.com/SscSPs/auctionbay/internal/platform/metrics"
)

// publishTimeout bounds one external publish of a notification.
const publishTimeout = 10 * time.Second

// notificationService implements the NotificationSvcFacade interface
type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
	publisher        events.OutbidPublisher
}

// NewNotificationService creates a notification service. publisher may be nil.
// Publishing happens in the background after the notification is stored.
func NewNotificationService(repo portsrepo.NotificationRepositoryFacade, publisher events.OutbidPublisher, options ...ServiceOption) portssvc.NotificationSvcFacade {
	return &notificationService{
		BaseService:      newBaseService(options...),
		notificationRepo: repo,
		publisher:        publisher,
	}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) Create(ctx context.Context, notification domain.Notification) (*domain.Notification, error) {
	notification.Timestamp = s.Now()
	notification.IsRead = false

	if err := s.notificationRepo.SaveNotification(ctx, &notification); err != nil {
		return nil, fmt.Errorf("failed to save notification for user %s: %w", notification.UserID, err)
	}
	metrics.Notifications.WithLabelValues(metrics.NotificationCreated).Inc()

	s.LogDebug(ctx, "Notification created",
		slog.Int64("notification_id", notification.NotificationID),
		slog.String("user_id", notification.UserID),
		slog.Int64("auction_id", notification.AuctionID))

	if s.publisher != nil && notification.Kind == domain.NotificationOutbid {
		go s.publish(context.WithoutCancel(ctx), notification)
	}
	return &notification, nil
}

// publish fans a stored notification out to the external channel. It runs off
// the caller's goroutine and is bounded by publishTimeout.
func (s *notificationService) publish(ctx context.Context, notification domain.Notification) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := s.publisher.PublishOutbid(ctx, notification); err != nil {
		metrics.Notifications.WithLabelValues(metrics.NotificationPublishFailed).Inc()
		s.LogError(ctx, err, "Failed to publish outbid event",
			slog.Int64("notification_id", notification.NotificationID),
			slog.String("user_id", notification.UserID))
		return
	}
	metrics.Notifications.WithLabelValues(metrics.NotificationPublished).Inc()
}

func (s *notificationService) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.ListNotificationsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notifications",
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list notifications for user %s: %w", userID, err)
	}
	if notifications == nil {
		return []domain.Notification{}, nil
	}
	return notifications, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := s.notificationRepo.CountUnreadNotifications(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count unread notifications",
			slog.String("user_id", userID))
		return 0, fmt.Errorf("failed to count unread notifications for user %s: %w", userID, err)
	}
	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID string, notificationID int64) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, userID, notificationID); err != nil {
		s.LogError(ctx, err, "Failed to mark notification read",
			slog.String("user_id", userID),
			slog.Int64("notification_id", notificationID))
		return err
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	changed, err := s.notificationRepo.MarkAllNotificationsRead(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to mark all notifications read",
			slog.String("user_id", userID))
		return err
	}
	s.LogDebug(ctx, "Notifications marked read",
		slog.String("user_id", userID),
		slog.Int64("changed", changed))
	return nil
}
