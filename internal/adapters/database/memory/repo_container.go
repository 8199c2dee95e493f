package memory

import (
	portsrepo "github.com/SscSPs/auctionbay/internal/core/ports/repositories"
)

// NewRepositoryProvider wires fresh in-memory stores into a RepositoryProvider.
func NewRepositoryProvider(users *UserDirectory) portsrepo.RepositoryProvider {
	if users == nil {
		users = NewUserDirectory()
	}
	return portsrepo.RepositoryProvider{
		AuctionRepo:      NewAuctionStore(),
		NotificationRepo: NewNotificationStore(),
		UserDirectory:    users,
	}
}
