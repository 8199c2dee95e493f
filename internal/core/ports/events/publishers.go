package events

import (
	"context"

	"github.com/SscSPs/auctionbay/internal/core/domain"
)

// OutbidPublisher fans an outbid notification out to an external channel (push gateway, mail).
type OutbidPublisher interface {
	PublishOutbid(ctx context.Context, notification domain.Notification) error
}
