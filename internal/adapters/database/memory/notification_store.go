package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/SscSPs/auctionbay/internal/core/domain"
	portsrepo "github.com/SscSPs/auctionbay/internal/core/ports/repositories"
	"github.com/samber/lo"
)

// NotificationStore keeps notifications in memory.
type NotificationStore struct {
	mu            sync.Mutex
	notifications []domain.Notification
	lastID        int64
}

// NewNotificationStore creates an empty store.
func NewNotificationStore() *NotificationStore {
	return &NotificationStore{}
}

var _ portsrepo.NotificationRepositoryFacade = (*NotificationStore)(nil)

func (s *NotificationStore) SaveNotification(ctx context.Context, notification *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	notification.NotificationID = s.lastID
	s.notifications = append(s.notifications, *notification)
	return nil
}

func (s *NotificationStore) ListNotificationsByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	s.mu.Lock()
	mine := lo.Filter(s.notifications, func(n domain.Notification, _ int) bool { return n.UserID == userID })
	s.mu.Unlock()

	slices.SortFunc(mine, func(a, b domain.Notification) int {
		return cmp.Or(b.Timestamp.Compare(a.Timestamp), cmp.Compare(b.NotificationID, a.NotificationID))
	})
	return mine, nil
}

func (s *NotificationStore) CountUnreadNotifications(ctx context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.CountBy(s.notifications, func(n domain.Notification) bool {
		return n.UserID == userID && !n.IsRead
	}), nil
}

func (s *NotificationStore) MarkNotificationRead(ctx context.Context, userID string, notificationID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		n := &s.notifications[i]
		if n.NotificationID == notificationID && n.UserID == userID {
			n.IsRead = true
			break
		}
	}
	return nil
}

func (s *NotificationStore) MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var changed int64
	for i := range s.notifications {
		n := &s.notifications[i]
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			changed++
		}
	}
	return changed, nil
}
