package commands

import (
	"context"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// UpdateShipmentCommandHandler applies a partial update to a shipment.
// When the patch touches a pricing-relevant field the handler re-resolves
// the rate from the (possibly new) delivery address and recomputes the
// price, so the stored price never drifts from the stored attributes.
type UpdateShipmentCommandHandler struct {
	uowFactory      ShipmentUoWFactory
	rateRepository  ports.RateRepository
	cityResolver    services.CityResolver
	priceCalculator services.PriceCalculator
}

// NewUpdateShipmentCommandHandler creates a handler for shipment updates.
func NewUpdateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	rateRepository ports.RateRepository,
	cityResolver services.CityResolver,
	priceCalculator services.PriceCalculator,
) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory:      uowFactory,
		rateRepository:  rateRepository,
		cityResolver:    cityResolver,
		priceCalculator: priceCalculator,
	}
}

// Handle processes the update command and returns the updated shipment.
// Only the shipment's owner or an Admin may update it.
func (h *UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if !target.IsOwnedBy(cmd.Actor().ID()) && !cmd.Actor().HasRole(actor.Admin) {
		return nil, errs.NewForbiddenError(cmd.Actor().ID().String(), "update shipment")
	}

	if err = h.applyPatch(target, cmd); err != nil {
		return nil, err
	}

	if cmd.ChangesPricing() {
		if err = h.reprice(ctx, target); err != nil {
			return nil, err
		}
	}

	if err = uow.ShipmentRepository().Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}

func (h *UpdateShipmentCommandHandler) applyPatch(target *shipment.Shipment, cmd UpdateShipmentCommand) error {
	pickupAddress := target.PickupAddress()
	if cmd.PickupAddress() != nil {
		pickupAddress = *cmd.PickupAddress()
	}
	deliveryAddress := target.DeliveryAddress()
	if cmd.DeliveryAddress() != nil {
		deliveryAddress = *cmd.DeliveryAddress()
	}
	if err := target.ChangeRoute(pickupAddress, deliveryAddress); err != nil {
		return err
	}

	weight := target.Weight()
	if cmd.Weight() != nil {
		weight = *cmd.Weight()
	}
	dimensions := target.Dimensions()
	if cmd.Dimensions() != nil {
		dimensions = *cmd.Dimensions()
	}
	isFragile := target.IsFragile()
	if cmd.IsFragile() != nil {
		isFragile = *cmd.IsFragile()
	}
	deliveryOption := target.DeliveryOption()
	if cmd.DeliveryOption() != nil {
		deliveryOption = *cmd.DeliveryOption()
	}
	return target.ChangeParcel(weight, dimensions, isFragile, deliveryOption)
}

func (h *UpdateShipmentCommandHandler) reprice(ctx context.Context, target *shipment.Shipment) error {
	tier, err := h.cityResolver.ResolveTier(target.DeliveryAddress())
	if err != nil {
		return err
	}

	activeRate, err := h.rateRepository.GetActiveByTier(ctx, tier)
	if err != nil {
		return err
	}

	price, err := h.priceCalculator.Calculate(
		activeRate, target.Weight(), target.Dimensions().Volume(), target.IsFragile(), target.DeliveryOption())
	if err != nil {
		return err
	}

	return target.ApplyRate(activeRate.ID(), price)
}
