package status

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry instance was not created
	// through the NewEntry factory method or RestoreEntry.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")
)

// Entry is one row of a shipment's status ledger: a named delivery state
// recorded at a point in time. Entries are ordered by creation time; the
// shipment's projected status is the name of its latest surviving entry.
//
// Entries are written only by the coordination core (status appends and
// payment transitions). Retraction soft-deletes an entry so that it no
// longer counts toward the projection, while the row stays available for
// history.
type Entry struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	name       Name

	isConstructed bool
}

// NewEntry creates a new ledger entry with validation.
func NewEntry(id, shipmentID kernel.UUID, name Name) (*Entry, error) {
	e := &Entry{
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setShipmentID(shipmentID),
		e.setName(name),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEntry reconstructs a ledger entry from persistence.
func RestoreEntry(id, shipmentID kernel.UUID, name Name) (*Entry, error) {
	return NewEntry(id, shipmentID, name)
}

// Validate ensures the Entry instance was properly constructed through NewEntry.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// IsEqual compares two entries by their unique identifiers.
func (e *Entry) IsEqual(other *Entry) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// ShipmentID returns the shipment this entry belongs to.
func (e *Entry) ShipmentID() kernel.UUID {
	return e.shipmentID
}

// Name returns the delivery state this entry records.
func (e *Entry) Name() Name {
	return e.name
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.shipmentID = id
	return nil
}

func (e *Entry) setName(name Name) error {
	if err := name.Validate(); err != nil {
		return err
	}
	e.name = name
	return nil
}
