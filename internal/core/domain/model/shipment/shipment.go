package shipment

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/status"
	"shipping/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created
	// through the NewShipment factory method. This ensures all shipments are properly validated.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

// Shipment represents a booked parcel delivery. It is the aggregate root that
// owns the shipment's route, parcel attributes, derived price and projected
// delivery status.
//
// Shipment follows these invariants:
//   - Must have a valid unique identifier and owner
//   - Pickup and delivery addresses must be present
//   - Weight must be positive; dimensions must be a constructed Dimensions value
//   - price is always derived from the referenced rate and the parcel
//     attributes via the pricing engine; it is never set directly by a caller
//   - status always equals the name of the latest surviving status ledger
//     entry, or Pending when the ledger is empty
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Shipment struct {
	id      kernel.UUID
	ownerID kernel.UUID

	pickupAddress   string
	deliveryAddress string

	weight         float64
	dimensions     Dimensions
	isFragile      bool
	deliveryOption DeliveryOption

	rateID kernel.UUID
	price  float64

	status status.Name

	deliveryAgentID *kernel.UUID

	preferredDeliveryDate *time.Time
	preferredDeliveryTime *string

	isConstructed bool
}

// NewShipment creates a new Shipment with validation. The shipment starts in
// the Pending projection with an empty status ledger and no rate applied;
// callers must price it via ApplyRate before persisting.
func NewShipment(
	id, ownerID kernel.UUID,
	pickupAddress, deliveryAddress string,
	weight float64,
	dimensions Dimensions,
	isFragile bool,
	deliveryOption DeliveryOption,
) (*Shipment, error) {
	s := &Shipment{
		status:        status.Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOwnerID(ownerID),
		s.setPickupAddress(pickupAddress),
		s.setDeliveryAddress(deliveryAddress),
		s.setWeight(weight),
		s.setDimensions(dimensions),
		s.setDeliveryOption(deliveryOption),
	); err != nil {
		return nil, err
	}

	s.isFragile = isFragile
	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence, including the
// applied rate, price, projected status and optional agent assignment.
func RestoreShipment(
	id, ownerID kernel.UUID,
	pickupAddress, deliveryAddress string,
	weight float64,
	dimensions Dimensions,
	isFragile bool,
	deliveryOption DeliveryOption,
	rateID kernel.UUID,
	price float64,
	projected status.Name,
	deliveryAgentID *kernel.UUID,
	preferredDeliveryDate *time.Time,
	preferredDeliveryTime *string,
) (*Shipment, error) {
	s, err := NewShipment(id, ownerID, pickupAddress, deliveryAddress, weight, dimensions, isFragile, deliveryOption)
	if err != nil {
		return nil, err
	}

	if err = s.ApplyRate(rateID, price); err != nil {
		return nil, err
	}

	if err = s.ProjectStatus(projected); err != nil {
		return nil, err
	}

	if deliveryAgentID != nil {
		if err = s.AssignAgent(*deliveryAgentID); err != nil {
			return nil, err
		}
	}

	s.preferredDeliveryDate = preferredDeliveryDate
	s.preferredDeliveryTime = preferredDeliveryTime
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed through NewShipment.
// This prevents bypassing validation by directly instantiating the struct.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OwnerID returns the identifier of the user who booked the shipment.
func (s *Shipment) OwnerID() kernel.UUID {
	return s.ownerID
}

// PickupAddress returns the pickup address.
func (s *Shipment) PickupAddress() string {
	return s.pickupAddress
}

// DeliveryAddress returns the delivery address.
func (s *Shipment) DeliveryAddress() string {
	return s.deliveryAddress
}

// Weight returns the parcel weight.
func (s *Shipment) Weight() float64 {
	return s.weight
}

// Dimensions returns the parcel dimensions.
func (s *Shipment) Dimensions() Dimensions {
	return s.dimensions
}

// IsFragile reports whether the parcel requires fragile handling.
func (s *Shipment) IsFragile() bool {
	return s.isFragile
}

// DeliveryOption returns the selected delivery speed.
func (s *Shipment) DeliveryOption() DeliveryOption {
	return s.deliveryOption
}

// RateID returns the identifier of the rate the price was derived from.
func (s *Shipment) RateID() kernel.UUID {
	return s.rateID
}

// Price returns the derived price. It is read-only for callers: the only way
// to change it is ApplyRate, invoked by the lifecycle manager after pricing.
func (s *Shipment) Price() float64 {
	return s.price
}

// Status returns the projected delivery status.
func (s *Shipment) Status() status.Name {
	return s.status
}

// DeliveryAgent returns the assigned delivery agent's ID.
// Returns nil if no agent is assigned.
func (s *Shipment) DeliveryAgent() *kernel.UUID {
	return s.deliveryAgentID
}

// PreferredDeliveryDate returns the customer's preferred delivery date, if any.
func (s *Shipment) PreferredDeliveryDate() *time.Time {
	return s.preferredDeliveryDate
}

// PreferredDeliveryTime returns the customer's preferred delivery time window, if any.
func (s *Shipment) PreferredDeliveryTime() *string {
	return s.preferredDeliveryTime
}

// IsOwnedBy reports whether userID is the shipment owner.
func (s *Shipment) IsOwnedBy(userID kernel.UUID) bool {
	return s.ownerID.IsEqual(userID)
}

// IsAssignedAgent reports whether userID is the assigned delivery agent.
func (s *Shipment) IsAssignedAgent(userID kernel.UUID) bool {
	return s.deliveryAgentID != nil && s.deliveryAgentID.IsEqual(userID)
}

// ApplyRate records the rate the price was derived from together with the
// derived price. It is called by the lifecycle manager after running the
// pricing engine; callers never set the price directly.
func (s *Shipment) ApplyRate(rateID kernel.UUID, price float64) error {
	if err := rateID.Validate(); err != nil {
		return err
	}
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%f is not greater than 0", price))
	}

	s.rateID = rateID
	s.price = price
	return nil
}

// ChangeRoute updates the pickup and delivery addresses.
// A changed delivery address invalidates the applied rate; the caller is
// responsible for re-pricing afterwards.
func (s *Shipment) ChangeRoute(pickupAddress, deliveryAddress string) error {
	return errors.Join(
		s.setPickupAddress(pickupAddress),
		s.setDeliveryAddress(deliveryAddress),
	)
}

// ChangeParcel updates the pricing-relevant parcel attributes.
// The caller is responsible for re-pricing afterwards.
func (s *Shipment) ChangeParcel(weight float64, dimensions Dimensions, isFragile bool, option DeliveryOption) error {
	if err := errors.Join(
		s.setWeight(weight),
		s.setDimensions(dimensions),
		s.setDeliveryOption(option),
	); err != nil {
		return err
	}

	s.isFragile = isFragile
	return nil
}

// AssignAgent assigns a delivery agent to the shipment.
// Eligibility (the Delivery-Agent role) is checked by the caller against the
// role store; the aggregate only validates the identifier.
func (s *Shipment) AssignAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	s.deliveryAgentID = &agentID
	return nil
}

// Reschedule sets the preferred delivery date and optional time window.
func (s *Shipment) Reschedule(date time.Time, timeWindow string) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("preferredDeliveryDate")
	}

	s.preferredDeliveryDate = &date
	if timeWindow != "" {
		s.preferredDeliveryTime = &timeWindow
	} else {
		s.preferredDeliveryTime = nil
	}
	return nil
}

// ProjectStatus updates the projected delivery status. It must only be called
// together with a ledger write in the same transaction, so the projection and
// the ledger never diverge.
func (s *Shipment) ProjectStatus(name status.Name) error {
	if err := name.Validate(); err != nil {
		return err
	}

	s.status = name
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.ownerID = id
	return nil
}

func (s *Shipment) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	s.pickupAddress = address
	return nil
}

func (s *Shipment) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	s.deliveryAddress = address
	return nil
}

func (s *Shipment) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			fmt.Errorf("%f is not greater than 0", weight))
	}
	s.weight = weight
	return nil
}

func (s *Shipment) setDimensions(dimensions Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	s.dimensions = dimensions
	return nil
}

func (s *Shipment) setDeliveryOption(option DeliveryOption) error {
	if err := option.Validate(); err != nil {
		return err
	}
	s.deliveryOption = option
	return nil
}
