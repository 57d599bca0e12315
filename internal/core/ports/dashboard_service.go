package ports

import (
	"context"
	"time"

	"github.com/taskflow/taskboard/internal/core/domain"
	"github.com/taskflow/taskboard/internal/core/views"
)

// DashboardService produces the derived views for one user's assigned tasks.
type DashboardService interface {
	// Summary returns headline counts plus the completion rate.
	Summary(ctx context.Context, userID string, asOf time.Time) (*DashboardSummary, error)
	// ByStatus returns per-status task counts; zero-count statuses are omitted.
	ByStatus(ctx context.Context, userID string) (map[domain.TaskStatus]int, error)
	// Upcoming buckets the user's tasks into overdue/today/this-week.
	Upcoming(ctx context.Context, userID string, asOf time.Time) (*views.Buckets, error)
}

// DashboardSummary extends the view counts with the completion rate shown on
// the dashboard header.
type DashboardSummary struct {
	views.Summary
	CompletionRate int `json:"completion_rate"`
}

// TeamMemberSummary aggregates one member's workload for the team view.
type TeamMemberSummary struct {
	User           domain.User `json:"user"`
	TaskCount      int         `json:"task_count"`
	CompletedCount int         `json:"completed_count"`
	CompletionRate int         `json:"completion_rate"`
	OverdueCount   int         `json:"overdue_count"`
}

// TeamService produces the per-member completion overview.
type TeamService interface {
	Overview(ctx context.Context, asOf time.Time) ([]TeamMemberSummary, error)
}
