package ports

import (
	"context"

	"github.com/taskflow/taskboard/internal/core/domain"
)

// ProfileRepository defines persistence operations for user profiles. The
// identity subsystem owns these records; the rest of the system references
// them by id only.
type ProfileRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// UpdateRole sets the role on an existing profile.
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
}
