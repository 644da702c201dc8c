package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/shift"
)

// ShiftRepository defines the persistence contract for shift aggregates.
type ShiftRepository interface {
	// Add persists a new shift aggregate to storage.
	// The shift must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shift.Shift) error

	// Update persists changes to an existing shift aggregate.
	// The shift must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *shift.Shift) error

	// Get retrieves a shift aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shift.Shift, error)

	// GetLastForWorker retrieves the worker's most recently opened shift.
	// Returns ObjectNotFoundError when the worker has never opened one.
	GetLastForWorker(ctx context.Context, workerID kernel.UUID) (*shift.Shift, error)

	// GetStuckClosed retrieves shifts that were closed but whose accounting
	// never completed (lost time still missing). The repair job re-enqueues
	// the closing pipeline for them.
	GetStuckClosed(ctx context.Context) ([]*shift.Shift, error)
}
