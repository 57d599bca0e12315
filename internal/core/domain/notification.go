package domain

import (
	"errors"
	"time"
)

// NotificationType classifies why a notification was emitted.
type NotificationType string

const (
	NotificationAssignment NotificationType = "assignment"
	NotificationReminder   NotificationType = "reminder"
	NotificationMention    NotificationType = "mention"
	NotificationCompletion NotificationType = "completion"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification is an immutable record of a task event; only the read flag
// changes after creation. The message is pre-rendered, not templated.
type Notification struct {
	ID        string           `json:"id"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	TaskID    string           `json:"task_id,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
