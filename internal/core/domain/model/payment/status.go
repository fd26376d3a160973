package payment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the settlement state of a payment.
// It implements a state machine with defined transitions:
//
//	Pending ──┬──> Completed
//	          └──> Failed
//
// Pending is the only non-terminal state. Online payments move to Completed
// or Failed during settlement; COD payments stay Pending until the delivery
// agent collects the cash and completes them.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status of every payment.
	// For COD it also means "awaiting collection by the agent".
	Pending

	// Completed indicates the payment has settled. Terminal.
	Completed

	// Failed indicates settlement was rejected. Terminal.
	Failed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "Pending",
		Completed:     "Completed",
		Failed:        "Failed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Completed: "Completed",
		Failed:    "Failed",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a payment status from its string representation.
// Returns an error for anything other than "Pending", "Completed" or "Failed".
func StatusFromString(s string) (Status, error) {
	for paymentStatus, str := range getValidStatusStrings() {
		if str == s {
			return paymentStatus, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status is invalid",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Pending -> Completed
//
// Returns (0, error) if the payment is not Pending: both terminal states
// reject further transitions.
func (s Status) Complete() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return Completed, nil
}

// Fail transitions the status to Failed.
//
// Valid transitions:
//   - Pending -> Failed
//
// Returns (0, error) if the payment is not Pending.
func (s Status) Fail() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%s is not a valid status to fail", s.String()),
		)
	}
	return Failed, nil
}
