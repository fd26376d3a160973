// Package services provides domain services that implement business logic
// spanning multiple aggregates or requiring no state of its own.
//
// The package includes:
//   - PriceCalculator: derives a shipment's price from a rate record and the
//     parcel's attributes
//   - CityResolver: maps a delivery address to the city tier that selects
//     which rate applies
//
// Both services are pure: no I/O, no side effects, deterministic output for
// identical input. Domain services coordinate between aggregates following
// Domain-Driven Design principles.
package services
