package ports

import (
	"context"

	"github.com/taskflow/taskboard/internal/core/domain"
)

// NotificationRepository defines persistence operations for notifications.
// Records are append-only; only the read flag is ever mutated and nothing is
// deleted in normal operation.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	// List returns notifications newest first.
	List(ctx context.Context) ([]domain.Notification, error)
	UnreadCount(ctx context.Context) (int64, error)
	// MarkRead flips the read flag on one notification.
	MarkRead(ctx context.Context, id string) error
	// MarkAllRead flips the read flag on every notification.
	MarkAllRead(ctx context.Context) error
}
