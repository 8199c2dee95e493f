package services

import (
	"context"

	"github.com/SscSPs/auctionbay/internal/core/domain"
)

// NotificationReaderSvc defines read operations for a user's notifications
type NotificationReaderSvc interface {
	// ListForUser returns userID's notifications, newest first.
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)

	// UnreadCount returns how many of userID's notifications are unread.
	UnreadCount(ctx context.Context, userID string) (int, error)
}

// NotificationWriterSvc defines write operations for notifications
type NotificationWriterSvc interface {
	// Create persists a notification for its UserID and fans it out to any
	// configured publisher. Timestamp and IsRead are set here.
	Create(ctx context.Context, notification domain.Notification) (*domain.Notification, error)

	// MarkRead marks one of userID's notifications as read. Idempotent.
	MarkRead(ctx context.Context, userID string, notificationID int64) error

	// MarkAllRead marks all of userID's notifications as read. Idempotent.
	MarkAllRead(ctx context.Context, userID string) error
}

// NotificationSvcFacade combines all notification-related service interfaces
type NotificationSvcFacade interface {
	NotificationReaderSvc
	NotificationWriterSvc
}
