package ports

import (
	"context"

	"github.com/taskflow/taskboard/internal/core/domain"
)

// AuthService handles account registration, login, and the resolution of an
// authenticated subject to a domain user.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed session token plus
	// the resolved user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// ResolveSession maps an authenticated subject id to a domain user,
	// applying profile defaults (name from the email local part, member
	// role). Returns domain.ErrProfileNotFound when no profile exists,
	// which callers treat as "no authenticated user".
	ResolveSession(ctx context.Context, subjectID string) (*domain.User, error)
}
