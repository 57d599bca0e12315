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

// TaskService implements task CRUD and the notification side-effect rules.
type TaskService struct {
	tasks    ports.TaskRepository
	profiles ports.ProfileRepository
	notifier ports.NotificationService
	logger   zerolog.Logger
}

func NewTaskService(
	tasks ports.TaskRepository,
	profiles ports.ProfileRepository,
	notifier ports.NotificationService,
	logger zerolog.Logger,
) *TaskService {
	return &TaskService{tasks: tasks, profiles: profiles, notifier: notifier, logger: logger}
}

// Create validates and persists a new task. When the task is assigned, an
// assignment notification exists in the store before Create returns.
func (s *TaskService) Create(ctx context.Context, actingUserID string, input ports.CreateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidTask)
	}
	if actingUserID == "" {
		return nil, fmt.Errorf("%w: created_by is required", domain.ErrInvalidTask)
	}

	status := domain.TaskStatus(input.Status)
	if status == "" {
		status = domain.StatusTodo
	}
	if !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTask, input.Status)
	}

	priority := domain.Priority(input.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !domain.ValidPriority(priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidTask, input.Priority)
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ID:          newID(),
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		AssignedTo:  input.AssignedTo,
		CreatedBy:   actingUserID,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		Tags:        input.Tags,
	}

	if err := s.tasks.Insert(ctx, task); err != nil {
		s.logger.Error().Err(err).Msg("failed to create task")
		return nil, err
	}
	metrics.TasksCreatedTotal.WithLabelValues(string(task.Priority)).Inc()

	if task.AssignedTo != "" {
		s.emit(ctx, domain.NotificationAssignment, task.ID,
			fmt.Sprintf("%s assigned you a new task: %s", s.actorName(ctx, actingUserID), task.Title))
	}

	s.logger.Info().Str("task_id", task.ID).Str("created_by", actingUserID).Msg("task created")
	return task, nil
}

// Get retrieves a single task by id.
func (s *TaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.FindByID(ctx, id)
}

// Update merges a partial update into an existing task, bumps updated_at, and
// evaluates the notification rules against the previous state. Reassignment
// and completion are independent rules; both can fire on one call.
func (s *TaskService) Update(ctx context.Context, actingUserID, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	current, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	prev := *current

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidTask)
		}
		current.Title = *input.Title
	}
	if input.Description != nil {
		current.Description = *input.Description
	}
	if input.Status != nil {
		status := domain.TaskStatus(*input.Status)
		if !domain.ValidStatus(status) {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTask, *input.Status)
		}
		current.Status = status
	}
	if input.Priority != nil {
		priority := domain.Priority(*input.Priority)
		if !domain.ValidPriority(priority) {
			return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidTask, *input.Priority)
		}
		current.Priority = priority
	}
	if input.AssignedTo != nil {
		current.AssignedTo = *input.AssignedTo
	}
	if input.ClearDue {
		current.DueDate = nil
	} else if input.DueDate != nil {
		current.DueDate = input.DueDate
	}
	if input.Tags != nil {
		current.Tags = input.Tags
	}
	current.UpdatedAt = time.Now().UTC()

	if err := s.tasks.Update(ctx, current); err != nil {
		s.logger.Error().Err(err).Str("task_id", id).Msg("failed to update task")
		return nil, err
	}

	if current.AssignedTo != "" && current.AssignedTo != prev.AssignedTo {
		s.emit(ctx, domain.NotificationAssignment, current.ID,
			fmt.Sprintf("%s assigned you a task: %s", s.actorName(ctx, actingUserID), current.Title))
	}
	if current.Status == domain.StatusCompleted && prev.Status != domain.StatusCompleted {
		s.emit(ctx, domain.NotificationCompletion, current.ID,
			fmt.Sprintf("%s completed the task: %s", s.actorName(ctx, actingUserID), current.Title))
		metrics.TasksCompletedTotal.Inc()
	}

	return current, nil
}

// Delete removes a task. The boolean reports whether a record existed.
func (s *TaskService) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.tasks.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		s.logger.Info().Str("task_id", id).Msg("task deleted")
	}
	return removed, nil
}

// List returns tasks matching the filter.
func (s *TaskService) List(ctx context.Context, filter ports.ListTasksFilter) ([]domain.Task, error) {
	return s.tasks.List(ctx, filter)
}

// AssignedTo returns tasks assigned to the given user.
func (s *TaskService) AssignedTo(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.tasks.List(ctx, ports.ListTasksFilter{AssignedTo: userID})
}

// CreatedBy returns tasks created by the given user.
func (s *TaskService) CreatedBy(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.tasks.List(ctx, ports.ListTasksFilter{CreatedBy: userID})
}

// Overdue returns the user's assigned tasks due strictly before asOf and not
// completed.
func (s *TaskService) Overdue(ctx context.Context, userID string, asOf time.Time) ([]domain.Task, error) {
	assigned, err := s.tasks.List(ctx, ports.ListTasksFilter{AssignedTo: userID})
	if err != nil {
		return nil, err
	}
	overdue := make([]domain.Task, 0, len(assigned))
	for _, t := range assigned {
		if t.IsOverdue(asOf) {
			overdue = append(overdue, t)
		}
	}
	return overdue, nil
}

// emit creates a notification synchronously. The task mutation has already
// been persisted, so a failure here is logged rather than surfaced.
func (s *TaskService) emit(ctx context.Context, typ domain.NotificationType, taskID, message string) {
	_, err := s.notifier.Create(ctx, ports.CreateNotificationInput{
		Message: message,
		Type:    typ,
		TaskID:  taskID,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("task_id", taskID).Str("type", string(typ)).Msg("failed to create notification")
	}
}

// actorName resolves the acting user's display name. A dangling reference
// resolves to a placeholder, never an error.
func (s *TaskService) actorName(ctx context.Context, userID string) string {
	user, err := s.profiles.FindByID(ctx, userID)
	if err != nil || user.Name == "" {
		return "Someone"
	}
	return user.Name
}
