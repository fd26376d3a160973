package status_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/status"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	t.Run("string representations", func(t *testing.T) {
		assert.Equal(t, "Pending", status.Pending.String())
		assert.Equal(t, "In Transit", status.InTransit.String())
		assert.Equal(t, "Out for Delivery", status.OutForDelivery.String())
		assert.Equal(t, "Delivered", status.Delivered.String())
		assert.Equal(t, "Unknown", status.Unknown.String())
		assert.Equal(t, "Unknown", status.Name(42).String())
	})

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, status.Pending.Validate())
		require.NoError(t, status.Delivered.Validate())
		require.Error(t, status.Unknown.Validate())
		require.Error(t, status.Name(42).Validate())
	})

	t.Run("from string", func(t *testing.T) {
		name, err := status.NameFromString("Out for Delivery")
		require.NoError(t, err)
		assert.Equal(t, status.OutForDelivery, name)

		_, err = status.NameFromString("Lost")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewEntry(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		id := kernel.NewUUID()
		shipmentID := kernel.NewUUID()

		entry, err := status.NewEntry(id, shipmentID, status.InTransit)

		require.NoError(t, err)
		require.NoError(t, entry.Validate())
		assert.True(t, entry.ID().IsEqual(id))
		assert.True(t, entry.ShipmentID().IsEqual(shipmentID))
		assert.Equal(t, status.InTransit, entry.Name())
	})

	t.Run("invalid name", func(t *testing.T) {
		_, err := status.NewEntry(kernel.NewUUID(), kernel.NewUUID(), status.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid shipment id", func(t *testing.T) {
		_, err := status.NewEntry(kernel.NewUUID(), kernel.UUID{}, status.Pending)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var entry status.Entry
		require.ErrorIs(t, entry.Validate(), status.ErrEntryIsNotConstructed)
	})
}
