package rate

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// CityTier classifies a delivery destination into one of four pricing zones.
// Tier1 covers the major metros with the densest delivery network; Tier4 is
// the catch-all for everything else and carries the highest effective rates.
//
// CityTier is a value object used both by the rate table (each active rate
// belongs to exactly one tier) and by the city resolver, which maps a
// destination city onto a tier.
type CityTier int

const (
	// TierUnknown represents an invalid or undefined tier.
	// This value (0) helps catch uninitialized CityTier values.
	TierUnknown CityTier = iota

	// Tier1 covers major metro cities.
	Tier1

	// Tier2 covers large non-metro cities.
	Tier2

	// Tier3 covers mid-size cities.
	Tier3

	// Tier4 is the default tier for all remaining destinations.
	Tier4
)

// getTierStrings returns a map of CityTier values to their string representations.
func getTierStrings() map[CityTier]string {
	return map[CityTier]string{
		TierUnknown: "Unknown",
		Tier1:       "Tier1",
		Tier2:       "Tier2",
		Tier3:       "Tier3",
		Tier4:       "Tier4",
	}
}

// getValidTierStrings returns a map of only valid CityTier values.
func getValidTierStrings() map[CityTier]string {
	//nolint:exhaustive // TierUnknown is intentionally excluded as it's invalid
	return map[CityTier]string{
		Tier1: "Tier1",
		Tier2: "Tier2",
		Tier3: "Tier3",
		Tier4: "Tier4",
	}
}

// Validate checks if the CityTier value is valid.
// Valid tiers are Tier1 through Tier4; TierUnknown and any other values are invalid.
func (t CityTier) Validate() error {
	if _, ok := getValidTierStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("cityTier is invalid", fmt.Errorf("%d is not a valid city tier", t))
	}
	return nil
}

// String returns the human-readable name of the tier.
// Returns "Unknown" for invalid tier values. Implements fmt.Stringer.
func (t CityTier) String() string {
	if str, ok := getTierStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// CityTierFromString parses a tier from its string representation.
// Returns an error for anything other than "Tier1".."Tier4".
func CityTierFromString(s string) (CityTier, error) {
	for tier, str := range getValidTierStrings() {
		if str == s {
			return tier, nil
		}
	}
	return TierUnknown, errs.NewValueIsInvalidErrorWithCause(
		"cityTier is invalid",
		fmt.Errorf("%q is not a valid city tier", s),
	)
}
