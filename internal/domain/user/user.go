package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrEmptyEmail   = errors.New("email cannot be empty")
	ErrInvalidRole  = errors.New("role must be entrepreneur or investor")
	ErrInvalidEmail = errors.New("email is not valid")
)

// Role identifies which side of the platform a user is on
type Role string

const (
	RoleEntrepreneur Role = "entrepreneur"
	RoleInvestor     Role = "investor"
)

// User is a directory entry for a platform member. Authentication is out of
// scope; the directory only resolves identities and roles for the engines.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a directory entry, normalizing the email to lower case
func NewUser(name, email string, role Role) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if role != RoleEntrepreneur && role != RoleInvestor {
		return nil, ErrInvalidRole
	}

	return &User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}, nil
}

// IsInvestor reports whether the user may fund deals
func (u *User) IsInvestor() bool {
	return u.Role == RoleInvestor
}
