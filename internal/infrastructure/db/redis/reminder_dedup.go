package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const reminderTTL = 48 * time.Hour

// ReminderDedup records which task/due-day pairs have already been reminded
// about. Key format: reminder:<task_id>:<yyyy-mm-dd>
type ReminderDedup struct {
	client *redis.Client
}

// NewReminderDedup creates a ReminderDedup wrapping the given Redis client.
func NewReminderDedup(client *redis.Client) *ReminderDedup {
	return &ReminderDedup{client: client}
}

// IsDuplicate reports whether a reminder for this task and due day was
// already emitted.
func (d *ReminderDedup) IsDuplicate(ctx context.Context, taskID string, dueDay time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(taskID, dueDay)).Result()
	if err != nil {
		return false, fmt.Errorf("reminder dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that a reminder was emitted (expires after reminderTTL).
func (d *ReminderDedup) Mark(ctx context.Context, taskID string, dueDay time.Time) error {
	return d.client.Set(ctx, d.key(taskID, dueDay), "1", reminderTTL).Err()
}

func (d *ReminderDedup) key(taskID string, dueDay time.Time) string {
	return fmt.Sprintf("reminder:%s:%s", taskID, dueDay.Format("2006-01-02"))
}
