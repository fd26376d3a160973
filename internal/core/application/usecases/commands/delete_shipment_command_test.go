package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteShipmentCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewDeleteShipmentCommand(id, testActor(t, kernel.NewUUID(), actor.Customer))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.ShipmentID().IsEqual(id))
	})

	t.Run("empty shipment id", func(t *testing.T) {
		_, err := commands.NewDeleteShipmentCommand(kernel.UUID{}, testActor(t, kernel.NewUUID(), actor.Customer))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed actor", func(t *testing.T) {
		_, err := commands.NewDeleteShipmentCommand(kernel.NewUUID(), actor.Actor{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.DeleteShipmentCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrDeleteShipmentCommandIsNotConstructed)
	})
}
