// Package payment contains the payment aggregate with its Method and Status
// value objects. The aggregate owns the Pending -> Completed/Failed state
// machine; the payment coordinator drives it inside transactions that also
// write the shipment status ledger.
package payment
