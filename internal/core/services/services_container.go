package services

import (
	"github.com/SscSPs/auctionbay/internal/core/ports/events"
	portsrepo "github.com/SscSPs/auctionbay/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/auctionbay/internal/core/ports/services"
	"github.com/SscSPs/auctionbay/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// publisher may be nil when no external fan-out is configured.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher events.OutbidPublisher, options ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Notifications first since bid placement dispatches through it
	container.Notification = NewNotificationService(repos.NotificationRepo, publisher, options...)

	container.Auction = NewAuctionService(repos.AuctionRepo, options...)
	container.Bid = NewBidService(repos.AuctionRepo, container.Notification, options...)
	container.Listing = NewListingService(repos.AuctionRepo, repos.UserDirectory, ListingConfig{
		RecentlyClosedWindow: cfg.RecentlyClosedWindow,
		DefaultPageSize:      cfg.DefaultPageSize,
		MaxPageSize:          cfg.MaxPageSize,
	}, options...)

	return container
}
