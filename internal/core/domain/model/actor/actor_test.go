package actor_test

import (
	"testing"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("valid actor", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := actor.NewActor(id, []actor.Role{actor.Customer, actor.DeliveryAgent})

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.Len(t, a.Roles(), 2)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := actor.NewActor(kernel.UUID{}, []actor.Role{actor.Admin})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("no roles", func(t *testing.T) {
		_, err := actor.NewActor(kernel.NewUUID(), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := actor.NewActor(kernel.NewUUID(), []actor.Role{actor.RoleUnknown})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var a actor.Actor
		require.ErrorIs(t, a.Validate(), actor.ErrActorIsNotConstructed)
	})
}

func TestActor_HasRole(t *testing.T) {
	a, err := actor.NewActor(kernel.NewUUID(), []actor.Role{actor.Customer})
	require.NoError(t, err)

	assert.True(t, a.HasRole(actor.Customer))
	assert.False(t, a.HasRole(actor.Admin))
	assert.True(t, a.HasAnyRole(actor.Admin, actor.Customer))
	assert.False(t, a.HasAnyRole(actor.Admin, actor.DeliveryAgent))
}

func TestRoleFromString(t *testing.T) {
	role, err := actor.RoleFromString("DeliveryAgent")
	require.NoError(t, err)
	assert.Equal(t, actor.DeliveryAgent, role)

	_, err = actor.RoleFromString("Superuser")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
