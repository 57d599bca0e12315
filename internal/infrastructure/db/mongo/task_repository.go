package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskflow/taskboard/internal/core/domain"
	"github.com/taskflow/taskboard/internal/core/ports"
)

const collectionTasks = "tasks"

type TaskRepository struct {
	col *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{col: db.Collection(collectionTasks)}
}

// mongoTask is the persistence shape. Document fields use snake_case; absent
// optional fields decode as zero values, never as errors.
type mongoTask struct {
	ID          string     `bson:"_id"`
	Title       string     `bson:"title"`
	Description string     `bson:"description,omitempty"`
	Status      string     `bson:"status"`
	Priority    string     `bson:"priority"`
	AssignedTo  string     `bson:"assigned_to,omitempty"`
	CreatedBy   string     `bson:"created_by"`
	DueDate     *time.Time `bson:"due_date,omitempty"`
	CreatedAt   time.Time  `bson:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at"`
	Tags        []string   `bson:"tags,omitempty"`
}

func toDoc(t *domain.Task) mongoTask {
	return mongoTask{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		AssignedTo:  t.AssignedTo,
		CreatedBy:   t.CreatedBy,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
		Tags:        t.Tags,
	}
}

func (d mongoTask) toDomain() domain.Task {
	return domain.Task{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Status:      domain.TaskStatus(d.Status),
		Priority:    domain.Priority(d.Priority),
		AssignedTo:  d.AssignedTo,
		CreatedBy:   d.CreatedBy,
		DueDate:     d.DueDate,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
		Tags:        d.Tags,
	}
}

// Insert stores a new task document.
func (r *TaskRepository) Insert(ctx context.Context, t *domain.Task) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, toDoc(t))
	return err
}

// FindByID retrieves a task by id.
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d mongoTask
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	t := d.toDomain()
	return &t, nil
}

// Update replaces the stored document with t.
func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": t.ID}, toDoc(t))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// Delete removes a task document; the boolean reports whether one existed.
func (r *TaskRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// List returns tasks matching the filter, in no guaranteed order.
func (r *TaskRepository) List(ctx context.Context, filter ports.ListTasksFilter) ([]domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := bson.M{}
	if filter.AssignedTo != "" {
		q["assigned_to"] = filter.AssignedTo
	}
	if filter.CreatedBy != "" {
		q["created_by"] = filter.CreatedBy
	}
	if filter.Status != "" {
		q["status"] = filter.Status
	}
	if filter.Priority != "" {
		q["priority"] = filter.Priority
	}

	cur, err := r.col.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var tasks []domain.Task
	for cur.Next(ctx) {
		var d mongoTask
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		tasks = append(tasks, d.toDomain())
	}
	return tasks, cur.Err()
}

// EnsureIndexes creates the indexes used by the list filters.
func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "assigned_to", Value: 1}}},
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
		{Keys: bson.D{{Key: "due_date", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
