// Package shipment contains the shipment aggregate and its value objects:
// parcel Dimensions and the DeliveryOption speed selector.
//
// The aggregate enforces the two derived-data invariants of the system: the
// price always comes from the pricing engine via ApplyRate, and the status
// projection always mirrors the status ledger via ProjectStatus. External
// callers can never write either field directly.
package shipment
