package commands

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// CreateShipmentCommandHandler handles the business logic for booking a
// shipment: it resolves the delivery address to a city tier, finds the
// active rate for that tier, prices the parcel and persists the shipment.
//
// The new shipment starts with an empty status ledger; its projected status
// defaults to Pending without a ledger entry being written.
type CreateShipmentCommandHandler struct {
	uowFactory      ShipmentUoWFactory
	rateRepository  ports.RateRepository
	cityResolver    services.CityResolver
	priceCalculator services.PriceCalculator
}

// NewCreateShipmentCommandHandler creates a handler for shipment booking.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	rateRepository ports.RateRepository,
	cityResolver services.CityResolver,
	priceCalculator services.PriceCalculator,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory:      uowFactory,
		rateRepository:  rateRepository,
		cityResolver:    cityResolver,
		priceCalculator: priceCalculator,
	}
}

// Handle processes the shipment booking command and returns the priced
// shipment. The rate lookup happens before the transaction opens; the
// shipment insert is transactional.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	tier, err := h.cityResolver.ResolveTier(cmd.DeliveryAddress())
	if err != nil {
		return nil, err
	}

	activeRate, err := h.rateRepository.GetActiveByTier(ctx, tier)
	if err != nil {
		return nil, err
	}

	newShipment, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.Actor().ID(),
		cmd.PickupAddress(),
		cmd.DeliveryAddress(),
		cmd.Weight(),
		cmd.Dimensions(),
		cmd.IsFragile(),
		cmd.DeliveryOption(),
	)
	if err != nil {
		return nil, err
	}

	price, err := h.priceCalculator.Calculate(
		activeRate, cmd.Weight(), cmd.Dimensions().Volume(), cmd.IsFragile(), cmd.DeliveryOption())
	if err != nil {
		return nil, err
	}

	if err = newShipment.ApplyRate(activeRate.ID(), price); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newShipment, nil
}
