package user

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("SuccessfulCreation", func(t *testing.T) {
		u, err := NewUser("Ada Founder", "Ada@Example.com ", RoleEntrepreneur)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, u.ID)
		assert.Equal(t, "ada@example.com", u.Email, "Email should be normalized")
		assert.Equal(t, RoleEntrepreneur, u.Role)
		assert.False(t, u.IsInvestor())
	})

	t.Run("Investor", func(t *testing.T) {
		u, err := NewUser("Vic Capital", "vic@fund.vc", RoleInvestor)
		require.NoError(t, err)
		assert.True(t, u.IsInvestor())
	})

	t.Run("Validation", func(t *testing.T) {
		_, err := NewUser("", "a@b.c", RoleInvestor)
		assert.ErrorIs(t, err, ErrEmptyName)

		_, err = NewUser("Ada", "", RoleInvestor)
		assert.ErrorIs(t, err, ErrEmptyEmail)

		_, err = NewUser("Ada", "not-an-email", RoleInvestor)
		assert.ErrorIs(t, err, ErrInvalidEmail)

		_, err = NewUser("Ada", "a@b.c", Role("admin"))
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}
