package repositories

import (
	"context"

	"github.com/SscSPs/auctionbay/internal/core/domain"
)

// UserDirectory reads public profiles owned by the identity service.
type UserDirectory interface {
	// FindProfilesByIDs returns the profiles that exist, keyed by user ID.
	FindProfilesByIDs(ctx context.Context, userIDs []string) (map[string]domain.UserProfile, error)
}
