// Package ports defines repository and infrastructure interfaces for the
// shop-floor domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/machine"
)

// MachineRepository defines the persistence contract for machine aggregates.
type MachineRepository interface {
	// Add persists a new machine aggregate to storage.
	// The machine must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *machine.Machine) error

	// Update persists changes to an existing machine aggregate.
	// The machine must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *machine.Machine) error

	// Get retrieves a machine aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*machine.Machine, error)

	// Acquire atomically claims a free, working machine for the given order.
	// The claim succeeds only if the machine is neither busy nor broken at
	// the moment of the write; a lost race returns ResourceConflictError.
	Acquire(ctx context.Context, machineID, orderID kernel.UUID) error
}
