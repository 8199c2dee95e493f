package domain

import "time"

// NotificationKind classifies a notification.
type NotificationKind string

const (
	NotificationOutbid NotificationKind = "outbid"
)

// Notification informs a user about something that happened on an auction.
type Notification struct {
	NotificationID int64            `json:"notificationID"`
	UserID         string           `json:"userID"`
	AuctionID      int64            `json:"auctionID"`
	Kind           NotificationKind `json:"kind"`
	Title          string           `json:"title"` // auction title at creation time
	Timestamp      time.Time        `json:"timestamp"`
	IsRead         bool             `json:"isRead"`
}
