package commands_test

import (
	"errors"
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/rate"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/status"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateShipmentCommand(t *testing.T, deliveryAddress string) commands.CreateShipmentCommand {
	t.Helper()
	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), "Warehouse 7, Pune, Maharashtra", deliveryAddress,
		5, testDimensions(t), true, shipment.Express,
		testActor(t, kernel.NewUUID(), actor.Customer))
	require.NoError(t, err)
	return cmd
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateShipmentCommand(t, "12 Marine Drive, Mumbai, Maharashtra")

	rateRepo := new(MockRateRepository)
	rateRepo.On("GetActiveByTier", mock.Anything, rate.Tier1).Return(testRate(t, rate.Tier1), nil).Once()

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(
		factory, rateRepo, services.NewCityResolver(), services.NewPriceCalculator())
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	// (10 + 2*5 + 1*8) * 1.5 * 1.2 = 50.40
	assert.InDelta(t, 50.40, created.Price(), 0.0001)
	assert.Equal(t, status.Pending, created.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	rateRepo.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateShipmentCommand{} // not constructed properly

	h := commands.NewCreateShipmentCommandHandler(
		new(MockShipmentUoWFactory), new(MockRateRepository),
		services.NewCityResolver(), services.NewPriceCalculator())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateShipmentCommandHandler_Handle_UnknownCity(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateShipmentCommand(t, "42 Nowhere Lane, Atlantis")

	h := commands.NewCreateShipmentCommandHandler(
		new(MockShipmentUoWFactory), new(MockRateRepository),
		services.NewCityResolver(), services.NewPriceCalculator())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateShipmentCommandHandler_Handle_RateLookupError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateShipmentCommand(t, "12 Marine Drive, Mumbai, Maharashtra")

	rateRepo := new(MockRateRepository)
	rateRepo.On("GetActiveByTier", mock.Anything, rate.Tier1).
		Return(nil, errors.New("rate lookup error")).Once()

	h := commands.NewCreateShipmentCommandHandler(
		new(MockShipmentUoWFactory), rateRepo,
		services.NewCityResolver(), services.NewPriceCalculator())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	rateRepo.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateShipmentCommand(t, "12 Marine Drive, Mumbai, Maharashtra")

	rateRepo := new(MockRateRepository)
	rateRepo.On("GetActiveByTier", mock.Anything, rate.Tier1).Return(testRate(t, rate.Tier1), nil).Once()

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(
		factory, rateRepo, services.NewCityResolver(), services.NewPriceCalculator())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
