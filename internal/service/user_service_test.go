package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venturelink-platform/internal/data/memory"
	"github.com/venturelink-platform/internal/domain/user"
)

func TestUserService_Register(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		u, err := svc.Register(ctx, "Ada Founder", "Ada@Startup.io", user.RoleEntrepreneur)
		require.NoError(t, err)
		assert.Equal(t, "ada@startup.io", u.Email)
		assert.Equal(t, user.RoleEntrepreneur, u.Role)
		assert.NotEqual(t, uuid.Nil, u.ID)
	})

	t.Run("DuplicateEmailCaseInsensitive", func(t *testing.T) {
		_, err := svc.Register(ctx, "Other Ada", "ADA@STARTUP.IO", user.RoleInvestor)
		var dup user.ErrDuplicateEmail
		assert.ErrorAs(t, err, &dup)
	})

	t.Run("InvalidRole", func(t *testing.T) {
		_, err := svc.Register(ctx, "Nobody", "nobody@example.com", user.Role("admin"))
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestUserService_GetByID(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository())
	ctx := context.Background()

	created, err := svc.Register(ctx, "Vic Capital", "vic@fund.vc", user.RoleInvestor)
	require.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		got, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Email, got.Email)
		assert.True(t, got.IsInvestor())
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := svc.GetByID(ctx, uuid.New())
		var notFound user.ErrUserNotFound
		assert.ErrorAs(t, err, &notFound)
	})
}
