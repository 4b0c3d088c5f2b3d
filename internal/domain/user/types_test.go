//go:build unit

package user_test

import (
	"testing"

	"venuebook/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	role, err := user.NewRole("admin")
	require.NoError(t, err)
	assert.True(t, role.IsAdmin())

	role, err = user.NewRole("user")
	require.NoError(t, err)
	assert.False(t, role.IsAdmin())

	_, err = user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)

	_, err = user.NewRole("")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestPrincipalCanActOn(t *testing.T) {
	ownerID := uuid.New()

	owner := user.NewPrincipal(ownerID, user.RoleUser)
	stranger := user.NewPrincipal(uuid.New(), user.RoleUser)
	admin := user.NewPrincipal(uuid.New(), user.RoleAdmin)

	assert.True(t, owner.CanActOn(ownerID))
	assert.False(t, stranger.CanActOn(ownerID))
	assert.True(t, admin.CanActOn(ownerID))
}
