package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// DeliveryOption selects the delivery speed for a shipment. Express delivery
// applies the rate's delivery option multiplier to the price; Standard does not.
type DeliveryOption int

const (
	// OptionUnknown represents an invalid or undefined delivery option.
	OptionUnknown DeliveryOption = iota

	// Standard is regular delivery with no price multiplier.
	Standard

	// Express is expedited delivery priced with the rate's delivery option multiplier.
	Express
)

// getOptionStrings returns a map of DeliveryOption values to their string representations.
func getOptionStrings() map[DeliveryOption]string {
	return map[DeliveryOption]string{
		OptionUnknown: "Unknown",
		Standard:      "Standard",
		Express:       "Express",
	}
}

// getValidOptionStrings returns a map of only valid DeliveryOption values.
func getValidOptionStrings() map[DeliveryOption]string {
	//nolint:exhaustive // OptionUnknown is intentionally excluded as it's invalid
	return map[DeliveryOption]string{
		Standard: "Standard",
		Express:  "Express",
	}
}

// Validate checks if the DeliveryOption value is valid.
func (o DeliveryOption) Validate() error {
	if _, ok := getValidOptionStrings()[o]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deliveryOption is invalid",
			fmt.Errorf("%d is not a valid delivery option", o))
	}
	return nil
}

// String returns the human-readable name of the option.
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (o DeliveryOption) String() string {
	if str, ok := getOptionStrings()[o]; ok {
		return str
	}
	return "Unknown"
}

// IsExpress reports whether the option is Express delivery.
func (o DeliveryOption) IsExpress() bool {
	return o == Express
}

// DeliveryOptionFromString parses a delivery option from its string
// representation ("Standard" or "Express").
func DeliveryOptionFromString(s string) (DeliveryOption, error) {
	for option, str := range getValidOptionStrings() {
		if str == s {
			return option, nil
		}
	}
	return OptionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"deliveryOption is invalid",
		fmt.Errorf("%q is not a valid delivery option", s),
	)
}
