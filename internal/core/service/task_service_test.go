package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskflow/taskboard/internal/core/domain"
	"github.com/taskflow/taskboard/internal/core/ports"
)

func newTaskFixture(t *testing.T) (*TaskService, *stubTaskRepo, *stubNotificationRepo) {
	t.Helper()
	tasks := newStubTaskRepo()
	profiles := newStubProfileRepo(
		domain.User{ID: "u1", Name: "Jane Smith", Email: "jane@example.com", Role: domain.RoleMember},
		domain.User{ID: "u2", Name: "John Doe", Email: "john@example.com", Role: domain.RoleAdmin},
	)
	notifications := &stubNotificationRepo{}
	notifier := NewNotificationService(notifications, zerolog.Nop())
	svc := NewTaskService(tasks, profiles, notifier, zerolog.Nop())
	return svc, tasks, notifications
}

func TestTaskService_Create_Roundtrip(t *testing.T) {
	svc, _, _ := newTaskFixture(t)

	created, err := svc.Create(context.Background(), "u2", ports.CreateTaskInput{
		Title:    "Fix bug",
		Status:   "todo",
		Priority: "high",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected a store-assigned id")
	}
	if created.CreatedBy != "u2" {
		t.Fatalf("expected created_by u2, got %q", created.CreatedBy)
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("expected created_at == updated_at on a new task")
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Title != created.Title || got.Status != created.Status || !got.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("Get returned a different record: %+v vs %+v", got, created)
	}
}

func TestTaskService_Create_Validation(t *testing.T) {
	svc, _, _ := newTaskFixture(t)

	if _, err := svc.Create(context.Background(), "u2", ports.CreateTaskInput{Title: "  "}); !errors.Is(err, domain.ErrInvalidTask) {
		t.Fatalf("expected ErrInvalidTask for empty title, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "", ports.CreateTaskInput{Title: "ok"}); !errors.Is(err, domain.ErrInvalidTask) {
		t.Fatalf("expected ErrInvalidTask for missing acting user, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "u2", ports.CreateTaskInput{Title: "ok", Status: "archived"}); !errors.Is(err, domain.ErrInvalidTask) {
		t.Fatalf("expected ErrInvalidTask for unknown status, got %v", err)
	}
}

func TestTaskService_Create_Defaults(t *testing.T) {
	svc, _, _ := newTaskFixture(t)

	created, err := svc.Create(context.Background(), "u2", ports.CreateTaskInput{Title: "Just a title"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Status != domain.StatusTodo {
		t.Fatalf("expected default status todo, got %q", created.Status)
	}
	if created.Priority != domain.PriorityMedium {
		t.Fatalf("expected default priority medium, got %q", created.Priority)
	}
}

func TestTaskService_Create_AssignmentNotification(t *testing.T) {
	svc, _, notifications := newTaskFixture(t)

	before, _ := notifications.UnreadCount(context.Background())

	created, err := svc.Create(context.Background(), "u2", ports.CreateTaskInput{
		Title:      "Fix bug",
		AssignedTo: "u1",
		Priority:   "high",
		Status:     "todo",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	after, _ := notifications.UnreadCount(context.Background())
	if after != before+1 {
		t.Fatalf("expected unread count to rise by 1, got %d -> %d", before, after)
	}

	list, _ := notifications.List(context.Background())
	n := list[0]
	if n.Type != domain.NotificationAssignment {
		t.Fatalf("expected assignment notification, got %q", n.Type)
	}
	if n.TaskID != created.ID {
		t.Fatalf("notification references %q, want %q", n.TaskID, created.ID)
	}
	if !strings.Contains(n.Message, "Fix bug") {
		t.Fatalf("message %q does not mention the task title", n.Message)
	}
	if !strings.Contains(n.Message, "John Doe") {
		t.Fatalf("message %q does not mention the acting user", n.Message)
	}
}

func TestTaskService_Create_Unassigned_NoNotification(t *testing.T) {
	svc, _, notifications := newTaskFixture(t)

	if _, err := svc.Create(context.Background(), "u2", ports.CreateTaskInput{Title: "Solo work"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if count, _ := notifications.UnreadCount(context.Background()); count != 0 {
		t.Fatalf("expected no notifications, got %d", count)
	}
}

func TestTaskService_Update_PreservesAbsentFields(t *testing.T) {
	svc, _, _ := newTaskFixture(t)

	due := time.Now().Add(48 * time.Hour).UTC()
	created, err := svc.Create(context.Background(), "u2", ports.CreateTaskInput{
		Title:       "Document API",
		Description: "All endpoints",
		Priority:    "low",
		DueDate:     &due,
		Tags:        []string{"docs"},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	status := "in-progress"
	updated, err := svc.Update(context.Background(), "u2", created.ID, ports.UpdateTaskInput{Status: &status})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.Status != domain.StatusInProgress {
		t.Fatalf("status not applied: %q", updated.Status)
	}
	if updated.Title != "Document API" || updated.Description != "All endpoints" {
		t.Fatalf("absent fields were not preserved: %+v", updated)
	}
	if updated.DueDate == nil || !updated.DueDate.Equal(due) {
		t.Fatalf("due date was not preserved")
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("updated_at did not advance")
	}
}

func TestTaskService_Update_NotFound(t *testing.T) {
	svc, _, _ := newTaskFixture(t)

	title := "x"
	if _, err := svc.Update(context.Background(), "u2", "missing", ports.UpdateTaskInput{Title: &title}); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_Update_CompletionNotification_Once(t *testing.T) {
	svc, _, notifications := newTaskFixture(t)

	created, err := svc.Create(context.Background(), "u2", ports.CreateTaskInput{Title: "Ship it"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	completed := "completed"
	if _, err := svc.Update(context.Background(), "u1", created.ID, ports.UpdateTaskInput{Status: &completed}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	count := countByType(t, notifications, domain.NotificationCompletion)
	if count != 1 {
		t.Fatalf("expected exactly one completion notification, got %d", count)
	}

	// completed → completed must not fire again
	if _, err := svc.Update(context.Background(), "u1", created.ID, ports.UpdateTaskInput{Status: &completed}); err != nil {
		t.Fatalf("second Update returned error: %v", err)
	}
	if countByType(t, notifications, domain.NotificationCompletion) != 1 {
		t.Fatalf("re-completing emitted an extra notification")
	}
}

func TestTaskService_Update_ReassignmentNotification(t *testing.T) {
	svc, _, notifications := newTaskFixture(t)

	created, err := svc.Create(context.Background(), "u2", ports.CreateTaskInput{Title: "Review PR", AssignedTo: "u1"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// reassigning to a different user fires even though the task already had an assignee
	assignee := "u2"
	if _, err := svc.Update(context.Background(), "u1", created.ID, ports.UpdateTaskInput{AssignedTo: &assignee}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if countByType(t, notifications, domain.NotificationAssignment) != 2 {
		t.Fatalf("expected a second assignment notification after reassignment")
	}

	// same assignee again is not a change
	if _, err := svc.Update(context.Background(), "u1", created.ID, ports.UpdateTaskInput{AssignedTo: &assignee}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if countByType(t, notifications, domain.NotificationAssignment) != 2 {
		t.Fatalf("unchanged assignee emitted a notification")
	}
}

func TestTaskService_Update_ReassignAndComplete_BothFire(t *testing.T) {
	svc, _, notifications := newTaskFixture(t)

	created, err := svc.Create(context.Background(), "u2", ports.CreateTaskInput{Title: "Handover"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	assignee := "u1"
	completed := "completed"
	if _, err := svc.Update(context.Background(), "u2", created.ID, ports.UpdateTaskInput{
		AssignedTo: &assignee,
		Status:     &completed,
	}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if countByType(t, notifications, domain.NotificationAssignment) != 1 {
		t.Fatalf("expected one assignment notification")
	}
	if countByType(t, notifications, domain.NotificationCompletion) != 1 {
		t.Fatalf("expected one completion notification")
	}
}

func TestTaskService_Delete_ThenGetNotFound(t *testing.T) {
	svc, _, _ := newTaskFixture(t)

	created, err := svc.Create(context.Background(), "u2", ports.CreateTaskInput{Title: "Temp"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	deleted, err := svc.Delete(context.Background(), created.ID)
	if err != nil || !deleted {
		t.Fatalf("expected delete to succeed, got %v %v", deleted, err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound after delete, got %v", err)
	}

	deleted, err = svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("second delete errored: %v", err)
	}
	if deleted {
		t.Fatalf("second delete reported a removed record")
	}
}

func TestTaskService_Overdue(t *testing.T) {
	svc, repo, _ := newTaskFixture(t)

	now := time.Now().UTC()
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	seed := []domain.Task{
		{ID: "t1", Title: "late", AssignedTo: "u1", Status: domain.StatusTodo, DueDate: &past},
		{ID: "t2", Title: "late but done", AssignedTo: "u1", Status: domain.StatusCompleted, DueDate: &past},
		{ID: "t3", Title: "future", AssignedTo: "u1", Status: domain.StatusTodo, DueDate: &future},
		{ID: "t4", Title: "no due date", AssignedTo: "u1", Status: domain.StatusTodo},
		{ID: "t5", Title: "someone else", AssignedTo: "u2", Status: domain.StatusTodo, DueDate: &past},
	}
	for i := range seed {
		if err := repo.Insert(context.Background(), &seed[i]); err != nil {
			t.Fatalf("seed insert: %v", err)
		}
	}

	overdue, err := svc.Overdue(context.Background(), "u1", now)
	if err != nil {
		t.Fatalf("Overdue returned error: %v", err)
	}
	if len(overdue) != 1 || overdue[0].ID != "t1" {
		t.Fatalf("expected exactly t1 overdue, got %+v", overdue)
	}
}

func countByType(t *testing.T, repo *stubNotificationRepo, typ domain.NotificationType) int {
	t.Helper()
	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	count := 0
	for _, n := range list {
		if n.Type == typ {
			count++
		}
	}
	return count
}
