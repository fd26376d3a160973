package queries_test

import (
	"testing"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listActor(t *testing.T, roles ...actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), roles)
	require.NoError(t, err)
	return a
}

func TestNewListShipmentsQuery(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		query, err := queries.NewListShipmentsQuery(nil, 0, 0, listActor(t, actor.Customer))

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, 1, query.Page())
		assert.Equal(t, 20, query.Limit())
	})

	t.Run("limit capped", func(t *testing.T) {
		query, err := queries.NewListShipmentsQuery(nil, 2, 500, listActor(t, actor.Admin))

		require.NoError(t, err)
		assert.Equal(t, 100, query.Limit())
	})

	t.Run("unknown filter keys are dropped", func(t *testing.T) {
		query, err := queries.NewListShipmentsQuery(map[string]string{
			"status":        "In Transit",
			"price":         "100",     // not filterable
			"1=1; DROP ALL": "ignored", // never reaches SQL
		}, 1, 10, listActor(t, actor.Admin))

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"status": "In Transit"}, query.Filters())
	})

	t.Run("negative pagination rejected", func(t *testing.T) {
		_, err := queries.NewListShipmentsQuery(nil, -1, 10, listActor(t, actor.Customer))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.ListShipmentsQuery
		require.ErrorIs(t, query.Validate(), queries.ErrListShipmentsQueryIsNotConstructed)
	})
}

func TestNewGetShipmentByIDQuery(t *testing.T) {
	t.Run("valid query", func(t *testing.T) {
		id := kernel.NewUUID()
		query, err := queries.NewGetShipmentByIDQuery(id, listActor(t, actor.Customer))

		require.NoError(t, err)
		assert.True(t, query.ShipmentID().IsEqual(id))
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := queries.NewGetShipmentByIDQuery(kernel.UUID{}, listActor(t, actor.Customer))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
