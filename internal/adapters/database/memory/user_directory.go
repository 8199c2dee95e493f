package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/auctionbay/internal/core/domain"
	portsrepo "github.com/SscSPs/auctionbay/internal/core/ports/repositories"
)

// UserDirectory is a fixed set of public profiles.
type UserDirectory struct {
	mu       sync.RWMutex
	profiles map[string]domain.UserProfile
}

// NewUserDirectory creates a directory seeded with profiles.
func NewUserDirectory(profiles ...domain.UserProfile) *UserDirectory {
	d := &UserDirectory{profiles: make(map[string]domain.UserProfile, len(profiles))}
	for _, p := range profiles {
		d.profiles[p.UserID] = p
	}
	return d
}

var _ portsrepo.UserDirectory = (*UserDirectory)(nil)

// Put adds or replaces a profile.
func (d *UserDirectory) Put(profile domain.UserProfile) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.profiles[profile.UserID] = profile
}

func (d *UserDirectory) FindProfilesByIDs(ctx context.Context, userIDs []string) (map[string]domain.UserProfile, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[string]domain.UserProfile, len(userIDs))
	for _, id := range userIDs {
		if p, ok := d.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}
