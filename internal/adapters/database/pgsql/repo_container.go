package pgsql

import (
	portsrepo "github.com/SscSPs/auctionbay/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AuctionRepo:      newPgxAuctionRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
		UserDirectory:    newPgxUserDirectory(dbPool),
	}
}
