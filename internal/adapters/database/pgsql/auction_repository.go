package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/auctionbay/internal/apperrors"
	"github.com/SscSPs/auctionbay/internal/core/domain"
	portsrepo "github.com/SscSPs/auctionbay/internal/core/ports/repositories"
	"github.com/SscSPs/auctionbay/internal/models"
	"github.com/SscSPs/auctionbay/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"
)

const auctionColumns = `a.auction_id, a.title, a.description, a.starting_price, a.start_date_time, a.end_date_time,
		a.auction_state, a.main_image_url, a.thumbnail_url, a.created_at, a.created_by, a.updated_at`

const bidColumns = `bid_id, auction_id, bidder_id, amount, created_at`

type PgxAuctionRepository struct {
	BaseRepository
}

// newPgxAuctionRepository creates a new repository for auction and bid data.
func newPgxAuctionRepository(pool *pgxpool.Pool) portsrepo.AuctionRepositoryFacade {
	return &PgxAuctionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AuctionRepositoryFacade = (*PgxAuctionRepository)(nil)

func scanAuction(row pgx.Row) (models.Auction, error) {
	var m models.Auction
	err := row.Scan(
		&m.AuctionID,
		&m.Title,
		&m.Description,
		&m.StartingPrice,
		&m.StartDateTime,
		&m.EndDateTime,
		&m.AuctionState,
		&m.MainImageURL,
		&m.ThumbnailURL,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.UpdatedAt,
	)
	return m, err
}

func scanBid(row pgx.Row) (models.Bid, error) {
	var m models.Bid
	err := row.Scan(&m.BidID, &m.AuctionID, &m.BidderID, &m.Amount, &m.CreatedAt)
	return m, err
}

func (r *PgxAuctionRepository) queryAuctions(ctx context.Context, query string, args ...any) ([]domain.Auction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query auctions: %w", err)
	}
	defer rows.Close()

	modelAuctions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Auction, error) {
		return scanAuction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan auctions: %w", err)
	}
	return mapping.ToDomainAuctionSlice(modelAuctions), nil
}

func (r *PgxAuctionRepository) queryBids(ctx context.Context, query string, args ...any) ([]domain.Bid, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bids: %w", err)
	}
	defer rows.Close()

	modelBids, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Bid, error) {
		return scanBid(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan bids: %w", err)
	}
	return mapping.ToDomainBidSlice(modelBids), nil
}

// SaveAuction inserts a new auction and sets its generated ID.
func (r *PgxAuctionRepository) SaveAuction(ctx context.Context, auction *domain.Auction) error {
	m := mapping.ToModelAuction(*auction)
	query := `
		INSERT INTO auctions (title, description, starting_price, start_date_time, end_date_time,
			auction_state, main_image_url, thumbnail_url, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING auction_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Title,
		m.Description,
		m.StartingPrice,
		m.StartDateTime,
		m.EndDateTime,
		m.AuctionState,
		m.MainImageURL,
		m.ThumbnailURL,
		m.CreatedAt,
		m.CreatedBy,
	).Scan(&auction.AuctionID)
	if err != nil {
		return fmt.Errorf("failed to save auction %q: %w", m.Title, translateError(err))
	}
	return nil
}

// UpdateAuction updates the owner-editable columns.
func (r *PgxAuctionRepository) UpdateAuction(ctx context.Context, auction domain.Auction) error {
	m := mapping.ToModelAuction(auction)
	query := `
		UPDATE auctions SET
			title = $2,
			description = $3,
			starting_price = $4,
			start_date_time = $5,
			end_date_time = $6,
			main_image_url = $7,
			thumbnail_url = $8,
			updated_at = $9
		WHERE auction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AuctionID,
		m.Title,
		m.Description,
		m.StartingPrice,
		m.StartDateTime,
		m.EndDateTime,
		m.MainImageURL,
		m.ThumbnailURL,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update auction %d: %w", m.AuctionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAuction removes an auction. Bids go with it through ON DELETE CASCADE.
func (r *PgxAuctionRepository) DeleteAuction(ctx context.Context, auctionID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM auctions WHERE auction_id = $1;`, auctionID)
	if err != nil {
		return fmt.Errorf("failed to delete auction %d: %w", auctionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAuctionByID retrieves an auction by its ID.
func (r *PgxAuctionRepository) FindAuctionByID(ctx context.Context, auctionID int64) (*domain.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions a WHERE a.auction_id = $1;`
	m, err := scanAuction(r.Pool.QueryRow(ctx, query, auctionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find auction by id %d: %w", auctionID, err)
	}
	auction := mapping.ToDomainAuction(m)
	return &auction, nil
}

// ListVisibleAuctions lists open auctions plus, for a viewer, the ones that
// closed inside the grace window and that the viewer bid on.
func (r *PgxAuctionRepository) ListVisibleAuctions(ctx context.Context, q portsrepo.VisibleAuctionsQuery) ([]domain.Auction, error) {
	query := `
		SELECT ` + auctionColumns + `
		FROM auctions a
		WHERE a.end_date_time > $1
		   OR ($2::text IS NOT NULL
		       AND a.end_date_time > $3
		       AND EXISTS (SELECT 1 FROM bids b WHERE b.auction_id = a.auction_id AND b.bidder_id = $2))
		ORDER BY a.end_date_time ASC, a.auction_id ASC
		LIMIT $4 OFFSET $5;
	`
	return r.queryAuctions(ctx, query, q.Now, q.ViewerID, q.ClosedSince, q.Limit, q.Offset)
}

func (r *PgxAuctionRepository) ListAuctionsByCreator(ctx context.Context, userID string) ([]domain.Auction, error) {
	query := `
		SELECT ` + auctionColumns + `
		FROM auctions a
		WHERE a.created_by = $1
		ORDER BY a.created_at DESC, a.auction_id DESC;
	`
	return r.queryAuctions(ctx, query, userID)
}

func (r *PgxAuctionRepository) ListAuctionsBidOnBy(ctx context.Context, userID string) ([]domain.Auction, error) {
	query := `
		SELECT ` + auctionColumns + `
		FROM auctions a
		WHERE a.created_by <> $1
		  AND EXISTS (SELECT 1 FROM bids b WHERE b.auction_id = a.auction_id AND b.bidder_id = $1)
		ORDER BY a.end_date_time ASC, a.auction_id ASC;
	`
	return r.queryAuctions(ctx, query, userID)
}

// ListAuctionsWonBy picks each auction's top bid with the same ordering as
// InsertBid and keeps the ended ones that userID holds.
func (r *PgxAuctionRepository) ListAuctionsWonBy(ctx context.Context, userID string, now time.Time) ([]domain.Auction, error) {
	query := `
		SELECT ` + auctionColumns + `
		FROM auctions a
		JOIN (
			SELECT DISTINCT ON (auction_id) auction_id, bidder_id
			FROM bids
			ORDER BY auction_id, amount DESC, created_at ASC, bid_id ASC
		) top ON top.auction_id = a.auction_id
		WHERE top.bidder_id = $1
		  AND a.end_date_time <= $2
		ORDER BY a.end_date_time DESC, a.auction_id DESC;
	`
	return r.queryAuctions(ctx, query, userID, now)
}

func (r *PgxAuctionRepository) ListBids(ctx context.Context, auctionID int64) ([]domain.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE auction_id = $1 ORDER BY created_at ASC, bid_id ASC;`
	return r.queryBids(ctx, query, auctionID)
}

func (r *PgxAuctionRepository) ListBidsForAuctions(ctx context.Context, auctionIDs []int64) (map[int64][]domain.Bid, error) {
	if len(auctionIDs) == 0 {
		return map[int64][]domain.Bid{}, nil
	}
	query := `
		SELECT ` + bidColumns + `
		FROM bids
		WHERE auction_id = ANY($1)
		ORDER BY auction_id, created_at ASC, bid_id ASC;
	`
	bids, err := r.queryBids(ctx, query, auctionIDs)
	if err != nil {
		return nil, err
	}
	return lo.GroupBy(bids, func(b domain.Bid) int64 { return b.AuctionID }), nil
}

// InsertBid serializes placements on an auction through its row lock.
func (r *PgxAuctionRepository) InsertBid(ctx context.Context, auctionID int64, decide domain.BidDecider) (*domain.BidPlacement, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	lockQuery := `SELECT ` + auctionColumns + ` FROM auctions a WHERE a.auction_id = $1 FOR UPDATE;`
	modelAuction, err := scanAuction(tx.QueryRow(ctx, lockQuery, auctionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("auction %d: %w", auctionID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock auction %d: %w", auctionID, err)
	}
	auction := mapping.ToDomainAuction(modelAuction)

	highestQuery := `
		SELECT ` + bidColumns + `
		FROM bids
		WHERE auction_id = $1
		ORDER BY amount DESC, created_at ASC, bid_id ASC
		LIMIT 1;
	`
	var previous *domain.Bid
	modelHighest, err := scanBid(tx.QueryRow(ctx, highestQuery, auctionID))
	switch {
	case err == nil:
		h := mapping.ToDomainBid(modelHighest)
		previous = &h
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, fmt.Errorf("failed to read highest bid of auction %d: %w", auctionID, err)
	}

	bid, err := decide(auction, previous)
	if err != nil {
		return nil, err
	}
	bid.AuctionID = auctionID
	bid.CreatedAt = bid.CreatedAt.Truncate(time.Microsecond) // timestamptz precision

	m := mapping.ToModelBid(bid)
	insertQuery := `
		INSERT INTO bids (auction_id, bidder_id, amount, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING bid_id;
	`
	if err := tx.QueryRow(ctx, insertQuery, m.AuctionID, m.BidderID, m.Amount, m.CreatedAt).Scan(&bid.BidID); err != nil {
		return nil, fmt.Errorf("failed to insert bid on auction %d: %w", auctionID, translateError(err))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &domain.BidPlacement{Auction: auction, Bid: bid, PreviousHighest: previous}, nil
}
