package service

import (
	"context"
	"time"

	"github.com/taskflow/taskboard/internal/core/domain"
	"github.com/taskflow/taskboard/internal/core/ports"
	"github.com/taskflow/taskboard/internal/core/views"
)

// DashboardService computes the derived views over one user's assigned tasks.
// All heavy lifting lives in the pure views package; this service only loads
// the task collection.
type DashboardService struct {
	tasks ports.TaskRepository
}

func NewDashboardService(tasks ports.TaskRepository) *DashboardService {
	return &DashboardService{tasks: tasks}
}

func (s *DashboardService) assigned(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.tasks.List(ctx, ports.ListTasksFilter{AssignedTo: userID})
}

// Summary returns headline counts and the completion rate for the user.
func (s *DashboardService) Summary(ctx context.Context, userID string, asOf time.Time) (*ports.DashboardSummary, error) {
	tasks, err := s.assigned(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ports.DashboardSummary{
		Summary:        views.SummaryCounts(tasks, asOf),
		CompletionRate: views.CompletionRate(tasks),
	}, nil
}

// ByStatus returns per-status counts for the user's assigned tasks.
func (s *DashboardService) ByStatus(ctx context.Context, userID string) (map[domain.TaskStatus]int, error) {
	tasks, err := s.assigned(ctx, userID)
	if err != nil {
		return nil, err
	}
	return views.GroupByStatus(tasks), nil
}

// Upcoming buckets the user's assigned tasks by due date.
func (s *DashboardService) Upcoming(ctx context.Context, userID string, asOf time.Time) (*views.Buckets, error) {
	tasks, err := s.assigned(ctx, userID)
	if err != nil {
		return nil, err
	}
	buckets := views.BucketByDueDate(tasks, asOf)
	return &buckets, nil
}
