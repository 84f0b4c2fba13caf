package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/venturelink-platform/internal/domain/user"
)

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userRepo user.Repository
}

// NewUserService creates a new user directory service
func NewUserService(userRepo user.Repository) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

// Register creates a new directory entry, checking for duplicate emails
func (s *UserServiceImpl) Register(ctx context.Context, name, email string, role user.Role) (*user.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, user.ErrDuplicateEmail{Email: email}
	}

	u, err := user.NewUser(name, email, role)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// GetByID retrieves a user by id, returns ErrUserNotFound if not found
func (s *UserServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
