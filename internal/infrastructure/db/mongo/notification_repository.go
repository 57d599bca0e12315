package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskflow/taskboard/internal/core/domain"
)

const collectionNotifications = "notifications"

type NotificationRepository struct {
	col *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{col: db.Collection(collectionNotifications)}
}

type mongoNotification struct {
	ID        string    `bson:"_id"`
	Message   string    `bson:"message"`
	Type      string    `bson:"type"`
	TaskID    string    `bson:"task_id,omitempty"`
	Read      bool      `bson:"read"`
	CreatedAt time.Time `bson:"created_at"`
}

func (d mongoNotification) toDomain() domain.Notification {
	return domain.Notification{
		ID:        d.ID,
		Message:   d.Message,
		Type:      domain.NotificationType(d.Type),
		TaskID:    d.TaskID,
		Read:      d.Read,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

// Insert stores a new notification document.
func (r *NotificationRepository) Insert(ctx context.Context, n *domain.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoNotification{
		ID:        n.ID,
		Message:   n.Message,
		Type:      string(n.Type),
		TaskID:    n.TaskID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.UTC(),
	}
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

// List returns all notifications, newest first.
func (r *NotificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.Notification
	for cur.Next(ctx) {
		var d mongoNotification
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d.toDomain())
	}
	return out, cur.Err()
}

// UnreadCount returns the number of unread notifications.
func (r *NotificationRepository) UnreadCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{"read": false})
}

// MarkRead flips the read flag on one notification.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead flips the read flag on every notification.
func (r *NotificationRepository) MarkAllRead(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx, bson.M{"read": false}, bson.M{"$set": bson.M{"read": true}})
	return err
}
