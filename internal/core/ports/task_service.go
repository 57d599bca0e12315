package ports

import (
	"context"
	"time"

	"github.com/taskflow/taskboard/internal/core/domain"
)

// CreateTaskInput carries all caller-supplied fields for a new task. The
// service assigns id, created_at, and updated_at.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	AssignedTo  string
	DueDate     *time.Time
	Tags        []string
}

// UpdateTaskInput is a partial update: nil fields are left untouched.
// AssignedTo and DueDate distinguish "absent" (nil) from "cleared" (pointer
// to zero value).
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	AssignedTo  *string
	DueDate     *time.Time
	ClearDue    bool
	Tags        []string
}

// TaskService defines use-case operations for tasks. Every mutation takes the
// acting user's id explicitly; notification side effects are evaluated
// synchronously before the call returns.
type TaskService interface {
	Create(ctx context.Context, actingUserID string, input CreateTaskInput) (*domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	Update(ctx context.Context, actingUserID, id string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter ListTasksFilter) ([]domain.Task, error)
	// AssignedTo returns tasks assigned to the given user.
	AssignedTo(ctx context.Context, userID string) ([]domain.Task, error)
	// CreatedBy returns tasks created by the given user.
	CreatedBy(ctx context.Context, userID string) ([]domain.Task, error)
	// Overdue returns tasks assigned to userID whose due date is strictly
	// before asOf and whose status is not completed.
	Overdue(ctx context.Context, userID string, asOf time.Time) ([]domain.Task, error)
}
