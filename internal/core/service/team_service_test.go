package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskflow/taskboard/internal/core/domain"
	"github.com/taskflow/taskboard/internal/core/ports"
)

func TestTeamService_Overview(t *testing.T) {
	profiles := newStubProfileRepo(
		domain.User{ID: "u1", Name: "Jane Smith", Email: "jane@example.com", Role: domain.RoleMember, PasswordHash: "hash"},
		domain.User{ID: "u2", Name: "John Doe", Email: "john@example.com", Role: domain.RoleAdmin, PasswordHash: "hash"},
	)
	tasks := newStubTaskRepo()
	svc := NewTeamService(tasks, profiles, zerolog.Nop())

	asOf := time.Date(2026, time.September, 2, 12, 0, 0, 0, time.UTC)
	yesterday := asOf.AddDate(0, 0, -1)

	ctx := context.Background()
	seed := []domain.Task{
		{ID: "t1", Title: "a", Status: domain.StatusCompleted, AssignedTo: "u1"},
		{ID: "t2", Title: "b", Status: domain.StatusTodo, AssignedTo: "u1", DueDate: &yesterday},
		{ID: "t3", Title: "c", Status: domain.StatusTodo, AssignedTo: "ghost"}, // assignee has no profile
		{ID: "t4", Title: "d", Status: domain.StatusTodo},                      // unassigned
	}
	for i := range seed {
		if err := tasks.Insert(ctx, &seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	overview, err := svc.Overview(ctx, asOf)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(overview) != 2 {
		t.Fatalf("expected one summary per member, got %d", len(overview))
	}

	byID := make(map[string]ports.TeamMemberSummary)
	for _, s := range overview {
		byID[s.User.ID] = s
		if s.User.PasswordHash != "" {
			t.Fatalf("password hash leaked for %q", s.User.ID)
		}
	}

	jane := byID["u1"]
	if jane.TaskCount != 2 || jane.CompletedCount != 1 || jane.OverdueCount != 1 {
		t.Fatalf("jane: %+v", jane)
	}
	if jane.CompletionRate != 50 {
		t.Fatalf("jane completion rate: %d", jane.CompletionRate)
	}

	john := byID["u2"]
	if john.TaskCount != 0 || john.CompletionRate != 0 {
		t.Fatalf("john: %+v", john)
	}
}
