package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskflow/taskboard/internal/api/metrics"
	"github.com/taskflow/taskboard/internal/core/domain"
	"github.com/taskflow/taskboard/internal/core/ports"
)

// NotificationService implements notification creation and read-state updates.
type NotificationService struct {
	repo   ports.NotificationRepository
	logger zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, logger zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, logger: logger}
}

// Create persists a new unread notification.
func (s *NotificationService) Create(ctx context.Context, input ports.CreateNotificationInput) (*domain.Notification, error) {
	if strings.TrimSpace(input.Message) == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrInvalidTask)
	}

	n := &domain.Notification{
		ID:        newID(),
		Message:   input.Message,
		Type:      input.Type,
		TaskID:    input.TaskID,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, n); err != nil {
		return nil, err
	}
	metrics.NotificationsCreatedTotal.WithLabelValues(string(n.Type)).Inc()

	s.logger.Debug().Str("notification_id", n.ID).Str("type", string(n.Type)).Msg("notification created")
	return n, nil
}

// List returns all notifications, newest first.
func (s *NotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	return s.repo.List(ctx)
}

// UnreadCount returns the number of unread notifications.
func (s *NotificationService) UnreadCount(ctx context.Context) (int64, error) {
	return s.repo.UnreadCount(ctx)
}

// MarkRead flips the read flag on one notification.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

// MarkAllRead flips the read flag on every notification.
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return s.repo.MarkAllRead(ctx)
}
