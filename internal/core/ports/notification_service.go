package ports

import (
	"context"

	"github.com/taskflow/taskboard/internal/core/domain"
)

// CreateNotificationInput carries the caller-supplied fields for a new
// notification; the service assigns id and created_at.
type CreateNotificationInput struct {
	Message string
	Type    domain.NotificationType
	TaskID  string
}

// NotificationService defines notification operations.
type NotificationService interface {
	Create(ctx context.Context, input CreateNotificationInput) (*domain.Notification, error)
	List(ctx context.Context) ([]domain.Notification, error)
	UnreadCount(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}
