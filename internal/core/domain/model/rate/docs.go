// Package rate contains the rate table domain model: the Rate pricing record
// and the CityTier classification that selects which rate applies to a
// shipment's destination.
//
// Rates are reference data. The coordination core only ever reads them; they
// are created by seed or admin tooling and become immutable once a shipment
// references them.
package rate
