package mapping

import (
	"github.com/SscSPs/auctionbay/internal/core/domain"
	"github.com/SscSPs/auctionbay/internal/models"
	"github.com/samber/lo"
)

// ToModelNotification converts a domain Notification to a model Notification
func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		NotificationID: d.NotificationID,
		UserID:         d.UserID,
		AuctionID:      d.AuctionID,
		Kind:           string(d.Kind),
		Title:          d.Title,
		CreatedAt:      d.Timestamp,
		IsRead:         d.IsRead,
	}
}

// ToDomainNotification converts a model Notification to a domain Notification
func ToDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID: m.NotificationID,
		UserID:         m.UserID,
		AuctionID:      m.AuctionID,
		Kind:           domain.NotificationKind(m.Kind),
		Title:          m.Title,
		Timestamp:      m.CreatedAt.UTC(),
		IsRead:         m.IsRead,
	}
}

// ToDomainNotificationSlice converts a slice of model Notifications to a slice of domain Notifications
func ToDomainNotificationSlice(ms []models.Notification) []domain.Notification {
	return lo.Map(ms, func(m models.Notification, _ int) domain.Notification { return ToDomainNotification(m) })
}

// ToDomainUserProfile converts a model UserProfile to a domain UserProfile
func ToDomainUserProfile(m models.UserProfile) domain.UserProfile {
	return domain.UserProfile{
		UserID:            m.UserID,
		UserName:          m.UserName,
		ProfilePictureURL: m.ProfilePictureURL,
	}
}
