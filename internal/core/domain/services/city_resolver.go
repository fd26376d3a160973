package services

import (
	"strings"

	"shipping/internal/core/domain/model/rate"
	"shipping/internal/pkg/errs"
)

// CityResolver is a domain service that maps a free-form delivery address to
// a rate city tier. Resolution happens in two distinct steps:
//
//  1. ExtractCity: split the address on commas and return the first component
//     matching a known serviced city. No match is an error — an address the
//     system cannot place anywhere is a client mistake.
//  2. TierFor: map a city to its tier. Serviced cities missing from the tier
//     table fall back to the lowest tier (Tier4) rather than fail, so newly
//     added cities price at the default rate until classified.
type CityResolver struct {
	knownCities map[string]struct{}
	cityTiers   map[string]rate.CityTier
}

// NewCityResolver creates a CityResolver backed by the built-in serviced-city
// list and city tier table.
func NewCityResolver() CityResolver {
	tiers := getCityTiers()
	known := make(map[string]struct{}, len(tiers)+len(getUntieredCities()))
	for city := range tiers {
		known[city] = struct{}{}
	}
	for _, city := range getUntieredCities() {
		known[city] = struct{}{}
	}
	return CityResolver{knownCities: known, cityTiers: tiers}
}

func getCityTiers() map[string]rate.CityTier {
	return map[string]rate.CityTier{
		"mumbai":    rate.Tier1,
		"delhi":     rate.Tier1,
		"bangalore": rate.Tier1,
		"hyderabad": rate.Tier1,
		"chennai":   rate.Tier1,
		"kolkata":   rate.Tier1,
		"pune":      rate.Tier2,
		"ahmedabad": rate.Tier2,
		"jaipur":    rate.Tier2,
		"lucknow":   rate.Tier2,
		"surat":     rate.Tier2,
		"kanpur":    rate.Tier3,
		"nagpur":    rate.Tier3,
		"indore":    rate.Tier3,
		"bhopal":    rate.Tier3,
		"patna":     rate.Tier3,
	}
}

// getUntieredCities lists serviced cities that have no tier classification
// yet. They resolve to the lowest tier.
func getUntieredCities() []string {
	return []string{
		"agra",
		"varanasi",
		"amritsar",
		"coimbatore",
	}
}

// ExtractCity returns the first comma-separated address component that names
// a known serviced city. The match is case-insensitive and ignores
// surrounding whitespace. If no component matches, the address cannot be
// priced and an ObjectNotFoundError is returned.
func (c CityResolver) ExtractCity(address string) (string, error) {
	for _, component := range strings.Split(address, ",") {
		city := strings.ToLower(strings.TrimSpace(component))
		if city == "" {
			continue
		}
		if _, ok := c.knownCities[city]; ok {
			return city, nil
		}
	}
	return "", errs.NewObjectNotFoundError("city", address)
}

// TierFor returns the tier of the given city, defaulting to the lowest tier
// when the city is not in the tier table.
func (c CityResolver) TierFor(city string) rate.CityTier {
	tier, ok := c.cityTiers[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		return rate.Tier4
	}
	return tier
}

// ResolveTier combines ExtractCity and TierFor: address in, tier out.
func (c CityResolver) ResolveTier(address string) (rate.CityTier, error) {
	city, err := c.ExtractCity(address)
	if err != nil {
		return rate.TierUnknown, err
	}
	return c.TierFor(city), nil
}
