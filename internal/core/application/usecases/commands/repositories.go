// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shopfloor/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Each handler depends only on the narrowest composition it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShiftRepoFactory provides access to the shift repository within a transaction.
	ShiftRepoFactory interface {
		ShiftRepository() ports.ShiftRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MachineRepoFactory provides access to the machine repository within a transaction.
	MachineRepoFactory interface {
		MachineRepository() ports.MachineRepository
	}

	// ReportRepoFactory provides access to the report repository within a transaction.
	ReportRepoFactory interface {
		ReportRepository() ports.ReportRepository
	}

	// ShiftUoW manages transactions for shift-only operations.
	ShiftUoW interface {
		TxManager
		ShiftRepoFactory
	}

	// ShiftUoWFactory creates new shift unit of work instances.
	ShiftUoWFactory interface {
		Create() ShiftUoW
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by hold and resume, which never touch other aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderMachineUoW coordinates an order with its machine.
	// Used by abort and force-stop, which free the machine.
	OrderMachineUoW interface {
		TxManager
		OrderRepoFactory
		MachineRepoFactory
	}

	// OrderMachineUoWFactory creates new order/machine unit of work instances.
	OrderMachineUoWFactory interface {
		Create() OrderMachineUoW
	}

	// StartOrderUoW coordinates the shift lookup, machine claim, and order
	// creation of a start-order operation in one transaction.
	StartOrderUoW interface {
		TxManager
		ShiftRepoFactory
		OrderRepoFactory
		MachineRepoFactory
	}

	// StartOrderUoWFactory creates new start-order unit of work instances.
	StartOrderUoWFactory interface {
		Create() StartOrderUoW
	}

	// AdvanceOrderUoW coordinates the aggregates touched by stage advancement:
	// the order itself, its machine (released on end), and the solved reports
	// that make up the bug time.
	AdvanceOrderUoW interface {
		TxManager
		OrderRepoFactory
		MachineRepoFactory
		ReportRepoFactory
	}

	// AdvanceOrderUoWFactory creates new advance-order unit of work instances.
	AdvanceOrderUoWFactory interface {
		Create() AdvanceOrderUoW
	}

	// CloseShiftUoW coordinates the shift with its orders for the close check.
	CloseShiftUoW interface {
		TxManager
		ShiftRepoFactory
		OrderRepoFactory
	}

	// CloseShiftUoWFactory creates new close-shift unit of work instances.
	CloseShiftUoWFactory interface {
		Create() CloseShiftUoW
	}

	// ReportUoW coordinates a report with the order and machine it concerns.
	ReportUoW interface {
		TxManager
		ReportRepoFactory
		OrderRepoFactory
		MachineRepoFactory
	}

	// ReportUoWFactory creates new report unit of work instances.
	ReportUoWFactory interface {
		Create() ReportUoW
	}
)
