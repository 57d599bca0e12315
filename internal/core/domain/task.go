package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the workflow state of a task. Any status may move to
// any other status; the only derived semantic is that completed tasks are
// never counted as overdue.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusReview     TaskStatus = "review"
	StatusCompleted  TaskStatus = "completed"
)

// Priority represents the urgency assigned to a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var ErrTaskNotFound = errors.New("task not found")
var ErrInvalidTask = errors.New("invalid task")
var ErrForbidden = errors.New("access forbidden")

// ValidStatus reports whether s is one of the known task statuses.
func ValidStatus(s TaskStatus) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusCompleted:
		return true
	}
	return false
}

// ValidPriority reports whether p is one of the known priorities.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is the core aggregate root.
type Task struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Status      TaskStatus `json:"status" bson:"status"`
	Priority    Priority   `json:"priority" bson:"priority"`
	AssignedTo  string     `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	CreatedBy   string     `json:"created_by" bson:"created_by"`
	DueDate     *time.Time `json:"due_date,omitempty" bson:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
	Tags        []string   `json:"tags,omitempty" bson:"tags,omitempty"`
}

// IsOverdue reports whether the task's due date is strictly before asOf and
// the task is not completed. Tasks without a due date are never overdue.
func (t Task) IsOverdue(asOf time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(asOf) && t.Status != StatusCompleted
}
