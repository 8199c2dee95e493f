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

type PgxNotificationRepository struct {
	BaseRepository
}

// newPgxNotificationRepository creates a new repository for notification data.
func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification *domain.Notification) error {
	m := mapping.ToModelNotification(*notification)
	query := `
		INSERT INTO notifications (user_id, auction_id, kind, title, created_at, is_read)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING notification_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.UserID,
		m.AuctionID,
		m.Kind,
		m.Title,
		m.CreatedAt,
		m.IsRead,
	).Scan(&notification.NotificationID)
	if err != nil {
		return fmt.Errorf("failed to save notification for user %s: %w", m.UserID, translateError(err))
	}
	return nil
}

func (r *PgxNotificationRepository) ListNotificationsByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	query := `
		SELECT notification_id, user_id, auction_id, kind, title, created_at, is_read
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, notification_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelNotifications, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Notification, error) {
		var n models.Notification
		err := row.Scan(
			&n.NotificationID,
			&n.UserID,
			&n.AuctionID,
			&n.Kind,
			&n.Title,
			&n.CreatedAt,
			&n.IsRead,
		)
		return n, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan notifications: %w", err)
	}
	return mapping.ToDomainNotificationSlice(modelNotifications), nil
}

func (r *PgxNotificationRepository) CountUnreadNotifications(ctx context.Context, userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT is_read;`
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications for user %s: %w", userID, err)
	}
	return count, nil
}

func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, userID string, notificationID int64) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE notification_id = $1 AND user_id = $2 AND NOT is_read;`
	if _, err := r.Pool.Exec(ctx, query, notificationID, userID); err != nil {
		return fmt.Errorf("failed to mark notification %d read: %w", notificationID, err)
	}
	return nil
}

func (r *PgxNotificationRepository) MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error) {
	query := `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND NOT is_read;`
	tag, err := r.Pool.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read for user %s: %w", userID, err)
	}
	return tag.RowsAffected(), nil
}
