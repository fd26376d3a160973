// Package status contains the status ledger domain model: the Name enum of
// delivery states and the Entry aggregate representing one ledger row.
//
// The ledger is the source of truth for a shipment's delivery state. The
// shipment row carries a projection of the latest surviving entry; appending
// or retracting entries always updates that projection in the same
// transaction.
package status
