// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// StatusRepoFactory provides access to the status ledger repository within a transaction.
	StatusRepoFactory interface {
		StatusRepository() ports.StatusRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	// Used when commands only modify the shipment aggregate.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// StatusUoW manages transactions that touch the status ledger and the
	// shipment's status projection together. The ledger write and the
	// projection update must commit as one.
	StatusUoW interface {
		TxManager
		ShipmentRepoFactory
		StatusRepoFactory
	}

	// StatusUoWFactory creates new status unit of work instances.
	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// PaymentUoW manages transactions across payment, status ledger and
	// shipment aggregates. Payment transitions and their ledger entries
	// commit together or not at all.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   paymentRepo := uow.PaymentRepository()
	//   statusRepo := uow.StatusRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	PaymentUoW interface {
		TxManager
		ShipmentRepoFactory
		StatusRepoFactory
		PaymentRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
