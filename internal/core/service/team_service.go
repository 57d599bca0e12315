package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskflow/taskboard/internal/core/domain"
	"github.com/taskflow/taskboard/internal/core/ports"
	"github.com/taskflow/taskboard/internal/core/views"
)

// TeamService builds the per-member completion overview. Tasks assigned to
// ids with no matching profile are simply not shown; dangling references are
// valid.
type TeamService struct {
	tasks    ports.TaskRepository
	profiles ports.ProfileRepository
	logger   zerolog.Logger
}

func NewTeamService(tasks ports.TaskRepository, profiles ports.ProfileRepository, logger zerolog.Logger) *TeamService {
	return &TeamService{tasks: tasks, profiles: profiles, logger: logger}
}

// Overview returns one summary per member: assigned task count, completion
// rate, and overdue count as of asOf.
func (s *TeamService) Overview(ctx context.Context, asOf time.Time) ([]ports.TeamMemberSummary, error) {
	members, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("team overview: %w", err)
	}

	all, err := s.tasks.List(ctx, ports.ListTasksFilter{})
	if err != nil {
		return nil, fmt.Errorf("team overview: %w", err)
	}

	byAssignee := make(map[string][]domain.Task)
	for _, t := range all {
		if t.AssignedTo != "" {
			byAssignee[t.AssignedTo] = append(byAssignee[t.AssignedTo], t)
		}
	}

	summaries := make([]ports.TeamMemberSummary, 0, len(members))
	for _, m := range members {
		m.PasswordHash = ""
		tasks := byAssignee[m.ID]

		overdue := 0
		completed := 0
		for _, t := range tasks {
			if t.IsOverdue(asOf) {
				overdue++
			}
			if t.Status == domain.StatusCompleted {
				completed++
			}
		}

		summaries = append(summaries, ports.TeamMemberSummary{
			User:           m,
			TaskCount:      len(tasks),
			CompletedCount: completed,
			CompletionRate: views.CompletionRate(tasks),
			OverdueCount:   overdue,
		})
	}
	return summaries, nil
}
