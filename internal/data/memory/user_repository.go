// Package memory provides the in-process session store backing the engines by
// default. Each repository is constructed once at session start and holds its
// state for the lifetime of the process; nothing survives a restart. The
// repositories satisfy the same domain interfaces as the database-backed
// implementations, so a persistent store can be substituted without touching
// engine logic.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/venturelink-platform/internal/domain/user"
)

// UserRepository implements user.Repository over a process-local map
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]user.User
	byEmail map[string]uuid.UUID
}

// NewUserRepository creates an empty user directory
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[uuid.UUID]user.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

// Create stores a new directory entry, enforcing email uniqueness
func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(u.Email)
	if _, exists := r.byEmail[email]; exists {
		return user.ErrDuplicateEmail{Email: u.Email}
	}

	r.byID[u.ID] = *u
	r.byEmail[email] = u.ID
	return nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound{UserID: id}
	}
	copied := u
	return &copied, nil
}

// GetByEmail retrieves a user by email. Returns (nil, nil) when no user has
// the given email, matching the repository contract.
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	u := r.byID[id]
	copied := u
	return &copied, nil
}
