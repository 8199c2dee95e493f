package models

import "time"

// Notification is a row of the notifications table.
type Notification struct {
	NotificationID int64     `db:"notification_id"`
	UserID         string    `db:"user_id"`
	AuctionID      int64     `db:"auction_id"`
	Kind           string    `db:"kind"`
	Title          string    `db:"title"`
	CreatedAt      time.Time `db:"created_at"`
	IsRead         bool      `db:"is_read"`
}
