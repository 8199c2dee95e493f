package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/auctionbay/internal/core/domain"
	portsrepo "github.com/SscSPs/auctionbay/internal/core/ports/repositories"
	"github.com/SscSPs/auctionbay/internal/models"
	"github.com/SscSPs/auctionbay/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUserDirectory reads profiles from the users table, which the identity service owns.
type PgxUserDirectory struct {
	BaseRepository
}

func newPgxUserDirectory(pool *pgxpool.Pool) portsrepo.UserDirectory {
	return &PgxUserDirectory{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UserDirectory = (*PgxUserDirectory)(nil)

func (r *PgxUserDirectory) FindProfilesByIDs(ctx context.Context, userIDs []string) (map[string]domain.UserProfile, error) {
	if len(userIDs) == 0 {
		return map[string]domain.UserProfile{}, nil
	}
	query := `SELECT user_id, user_name, profile_picture_url FROM users WHERE user_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query user profiles: %w", err)
	}
	defer rows.Close()

	profiles, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.UserProfile])
	if err != nil {
		return nil, fmt.Errorf("failed to scan user profiles: %w", err)
	}

	out := make(map[string]domain.UserProfile, len(profiles))
	for _, p := range profiles {
		out[p.UserID] = mapping.ToDomainUserProfile(p)
	}
	return out, nil
}
