package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleMember  = "member"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")

// ErrProfileNotFound signals that an authenticated subject has no profile
// record. Callers treat this as "unauthenticated", not as a failure.
var ErrProfileNotFound = errors.New("profile not found")

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleManager || r == RoleMember
}

// User models a member of the workspace. Tasks and notifications reference
// users by id only; a reference to a deleted user resolves to an unknown
// user at display time rather than being a store-level error.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Avatar       string    `json:"avatar,omitempty"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
