package dto

import (
	"time"

	"github.com/SscSPs/auctionbay/internal/core/domain"
	"github.com/samber/lo"
)

// NotificationResponse defines the data returned for a notification.
type NotificationResponse struct {
	NotificationID int64                   `json:"notificationID"`
	AuctionID      int64                   `json:"auctionID"`
	Kind           domain.NotificationKind `json:"type"`
	Title          string                  `json:"title"`
	Timestamp      time.Time               `json:"timestamp"`
	IsRead         bool                    `json:"isRead"`
}

// UnreadCountResponse wraps the unread notification count.
type UnreadCountResponse struct {
	Count int `json:"count"`
}

// ToNotificationResponse converts a domain.Notification to NotificationResponse DTO
func ToNotificationResponse(n domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		AuctionID:      n.AuctionID,
		Kind:           n.Kind,
		Title:          n.Title,
		Timestamp:      n.Timestamp,
		IsRead:         n.IsRead,
	}
}

// ToListNotificationResponse converts a slice of domain.Notification to NotificationResponse DTOs
func ToListNotificationResponse(ns []domain.Notification) []NotificationResponse {
	return lo.Map(ns, func(n domain.Notification, _ int) NotificationResponse {
		return ToNotificationResponse(n)
	})
}
