package payment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Method selects how a shipment is paid for. Online payments settle through
// the payment gateway at booking time; COD payments are collected in cash by
// the assigned delivery agent after delivery.
type Method int

const (
	// MethodUnknown represents an invalid or undefined payment method.
	MethodUnknown Method = iota

	// Online is a prepaid payment settled through the gateway.
	Online

	// COD is cash on delivery, completed by the delivery agent.
	COD
)

// getMethodStrings returns a map of Method values to their string representations.
func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown: "Unknown",
		Online:        "Online",
		COD:           "COD",
	}
}

// getValidMethodStrings returns a map of only valid Method values.
func getValidMethodStrings() map[Method]string {
	//nolint:exhaustive // MethodUnknown is intentionally excluded as it's invalid
	return map[Method]string{
		Online: "Online",
		COD:    "COD",
	}
}

// Validate checks if the Method value is valid.
func (m Method) Validate() error {
	if _, ok := getValidMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the human-readable name of the method.
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// MethodFromString parses a payment method from its string representation
// ("Online" or "COD").
func MethodFromString(s string) (Method, error) {
	for method, str := range getValidMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}
