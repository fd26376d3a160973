package status

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Name identifies a delivery state in the shipment status ledger.
// The delivery lifecycle progresses through:
//
//	Pending ──> In Transit ──> Out for Delivery ──> Delivered
//
// The ledger itself is append-mostly: the current state of a shipment is
// the name of its latest surviving entry, so Name carries no transition
// rules of its own. A shipment with an empty ledger is Pending.
type Name int

const (
	// Unknown represents an invalid or undefined status name.
	// This value (0) helps catch uninitialized Name values.
	Unknown Name = iota

	// Pending is the implicit initial state of every shipment.
	// Shipments are Pending until the first ledger entry is written.
	Pending

	// InTransit indicates the shipment has been handed to the carrier.
	// Written when a payment is created for the shipment.
	InTransit

	// OutForDelivery indicates the assigned agent is delivering the shipment.
	OutForDelivery

	// Delivered is the terminal delivery state.
	// Written when a COD payment is completed by the delivery agent.
	Delivered
)

// getNameStrings returns a map of Name values to their string representations.
func getNameStrings() map[Name]string {
	return map[Name]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		InTransit:      "In Transit",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
	}
}

// getValidNameStrings returns a map of only valid Name values.
func getValidNameStrings() map[Name]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Name]string{
		Pending:        "Pending",
		InTransit:      "In Transit",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
	}
}

// Validate checks if the Name value is valid.
// Valid names are Pending, InTransit, OutForDelivery and Delivered.
func (n Name) Validate() error {
	if _, ok := getValidNameStrings()[n]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status name is invalid",
			fmt.Errorf("%d is not a valid status name", n))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (n Name) String() string {
	if str, ok := getNameStrings()[n]; ok {
		return str
	}
	return "Unknown"
}

// NameFromString parses a status name from its string representation,
// e.g. "In Transit". Returns an error for unrecognized names.
func NameFromString(s string) (Name, error) {
	for name, str := range getValidNameStrings() {
		if str == s {
			return name, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status name is invalid",
		fmt.Errorf("%q is not a valid status name", s),
	)
}
