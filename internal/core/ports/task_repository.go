package ports

import (
	"context"

	"github.com/taskflow/taskboard/internal/core/domain"
)

// ListTasksFilter carries the query parameters for listing tasks. All fields
// are optional; empty values mean no filter.
type ListTasksFilter struct {
	AssignedTo string
	CreatedBy  string
	Status     string
	Priority   string
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Insert(ctx context.Context, t *domain.Task) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// Update replaces the stored record with t. Returns
	// domain.ErrTaskNotFound when no record matches t.ID.
	Update(ctx context.Context, t *domain.Task) error
	// Delete removes the record. The boolean reports whether a record
	// existed and was removed.
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter ListTasksFilter) ([]domain.Task, error)
}
