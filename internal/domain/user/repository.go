package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines user directory persistence operations
type Repository interface {
	Create(ctx context.Context, u *User) error

	// GetByID returns ErrUserNotFound if no such user exists
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByEmail returns (nil, nil) when no user has the given email
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// ErrUserNotFound indicates a missing directory entry
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e ErrUserNotFound) Error() string {
	return "user not found: " + e.UserID.String()
}

// ErrDuplicateEmail indicates email uniqueness violation
type ErrDuplicateEmail struct {
	Email string
}

func (e ErrDuplicateEmail) Error() string {
	return "user with email already exists: " + e.Email
}
