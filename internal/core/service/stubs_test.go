package service

import (
	"context"
	"sync"

	"github.com/taskflow/taskboard/internal/core/domain"
	"github.com/taskflow/taskboard/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type stubTaskRepo struct {
	mu        sync.Mutex
	byID      map[string]domain.Task
	insertErr error // if set, Insert returns this error
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{byID: make(map[string]domain.Task)}
}

func (r *stubTaskRepo) Insert(_ context.Context, t *domain.Task) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[t.ID] = *t
	return nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	clone := t
	return &clone, nil
}

func (r *stubTaskRepo) Update(_ context.Context, t *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[t.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	r.byID[t.ID] = *t
	return nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

// List applies the same filters the real Mongo repo would use.
func (r *stubTaskRepo) List(_ context.Context, f ports.ListTasksFilter) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []domain.Task
	for _, t := range r.byID {
		if f.AssignedTo != "" && t.AssignedTo != f.AssignedTo {
			continue
		}
		if f.CreatedBy != "" && t.CreatedBy != f.CreatedBy {
			continue
		}
		if f.Status != "" && string(t.Status) != f.Status {
			continue
		}
		if f.Priority != "" && string(t.Priority) != f.Priority {
			continue
		}
		matched = append(matched, t)
	}
	return matched, nil
}

type stubProfileRepo struct {
	byID map[string]domain.User
}

func newStubProfileRepo(users ...domain.User) *stubProfileRepo {
	r := &stubProfileRepo{byID: make(map[string]domain.User)}
	for _, u := range users {
		r.byID[u.ID] = u
	}
	return r
}

func (r *stubProfileRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.byID[u.ID] = *u
	clone := *u
	return &clone, nil
}

func (r *stubProfileRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := u
	return &clone, nil
}

func (r *stubProfileRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubProfileRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *stubProfileRepo) UpdateRole(_ context.Context, id, role string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	r.byID[id] = u
	clone := u
	return &clone, nil
}

type stubNotificationRepo struct {
	notifications []domain.Notification
	insertErr     error
}

func (r *stubNotificationRepo) Insert(_ context.Context, n *domain.Notification) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	// newest first, mirroring the real repo's sort
	r.notifications = append([]domain.Notification{*n}, r.notifications...)
	return nil
}

func (r *stubNotificationRepo) List(_ context.Context) ([]domain.Notification, error) {
	out := make([]domain.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out, nil
}

func (r *stubNotificationRepo) UnreadCount(_ context.Context) (int64, error) {
	var n int64
	for _, notif := range r.notifications {
		if !notif.Read {
			n++
		}
	}
	return n, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id string) error {
	for i, notif := range r.notifications {
		if notif.ID == id {
			r.notifications[i].Read = true
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

func (r *stubNotificationRepo) MarkAllRead(_ context.Context) error {
	for i := range r.notifications {
		r.notifications[i].Read = true
	}
	return nil
}
