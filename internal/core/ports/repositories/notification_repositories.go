package repositories

import (
	"context"

	"github.com/SscSPs/auctionbay/internal/core/domain"
)

// NotificationReader defines read operations for notification data
type NotificationReader interface {
	// ListNotificationsByUser retrieves a user's notifications, newest first.
	ListNotificationsByUser(ctx context.Context, userID string) ([]domain.Notification, error)

	// CountUnreadNotifications counts a user's unread notifications.
	CountUnreadNotifications(ctx context.Context, userID string) (int, error)
}

// NotificationWriter defines write operations for notification data
type NotificationWriter interface {
	// SaveNotification persists a new notification and sets its NotificationID.
	SaveNotification(ctx context.Context, notification *domain.Notification) error

	// MarkNotificationRead flips the read flag of one of userID's notifications.
	// It is a no-op when the notification is missing, belongs to someone else or is already read.
	MarkNotificationRead(ctx context.Context, userID string, notificationID int64) error

	// MarkAllNotificationsRead flips every unread notification of userID and returns how many changed.
	MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error)
}

// NotificationRepositoryFacade combines all notification-related repository interfaces
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
