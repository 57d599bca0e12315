package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskflow/taskboard/internal/api/metrics"
	"github.com/taskflow/taskboard/internal/core/domain"
	"github.com/taskflow/taskboard/internal/core/ports"
)

// ReminderDedup abstracts the idempotency store (Redis) so a task is reminded
// about at most once per due date.
type ReminderDedup interface {
	IsDuplicate(ctx context.Context, taskID string, dueDay time.Time) (bool, error)
	Mark(ctx context.Context, taskID string, dueDay time.Time) error
}

// ReminderService scans for tasks due the next calendar day and emits
// reminder notifications. Scans are idempotent: re-running within the same
// day produces no new notifications.
type ReminderService struct {
	tasks    ports.TaskRepository
	notifier ports.NotificationService
	dedup    ReminderDedup
	logger   zerolog.Logger
}

func NewReminderService(
	tasks ports.TaskRepository,
	notifier ports.NotificationService,
	dedup ReminderDedup,
	logger zerolog.Logger,
) *ReminderService {
	return &ReminderService{tasks: tasks, notifier: notifier, dedup: dedup, logger: logger}
}

// Scan emits one reminder for every task due on the calendar day after asOf
// that is not completed. Returns the number of reminders emitted.
func (s *ReminderService) Scan(ctx context.Context, asOf time.Time) (int, error) {
	all, err := s.tasks.List(ctx, ports.ListTasksFilter{})
	if err != nil {
		return 0, fmt.Errorf("reminder scan: %w", err)
	}

	tomorrow := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location()).AddDate(0, 0, 1)
	emitted := 0

	for _, t := range all {
		if t.DueDate == nil || t.Status == domain.StatusCompleted {
			continue
		}
		due := t.DueDate.In(asOf.Location())
		if due.Year() != tomorrow.Year() || due.Month() != tomorrow.Month() || due.Day() != tomorrow.Day() {
			continue
		}

		isDup, err := s.dedup.IsDuplicate(ctx, t.ID, tomorrow)
		if err != nil {
			s.logger.Warn().Err(err).Str("task_id", t.ID).Msg("reminder dedup check failed, skipping")
			continue
		}
		if isDup {
			metrics.RemindersTotal.WithLabelValues("dedup_hit").Inc()
			continue
		}

		_, err = s.notifier.Create(ctx, ports.CreateNotificationInput{
			Message: fmt.Sprintf("Task %q is due tomorrow", t.Title),
			Type:    domain.NotificationReminder,
			TaskID:  t.ID,
		})
		if err != nil {
			s.logger.Warn().Err(err).Str("task_id", t.ID).Msg("failed to create reminder")
			continue
		}
		if err := s.dedup.Mark(ctx, t.ID, tomorrow); err != nil {
			s.logger.Warn().Err(err).Str("task_id", t.ID).Msg("failed to set reminder dedup key")
		}
		metrics.RemindersTotal.WithLabelValues("emitted").Inc()
		emitted++
	}

	if emitted > 0 {
		s.logger.Info().Int("count", emitted).Msg("reminders emitted")
	}
	return emitted, nil
}
