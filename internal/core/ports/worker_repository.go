package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/worker"
)

// WorkerRepository defines the persistence contract for workers.
type WorkerRepository interface {
	// Add persists a new worker to storage.
	Add(ctx context.Context, aggregate *worker.Worker) error

	// Get retrieves a worker by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error)
}

// PositionRepository provides read access to the position catalog.
// Positions carry the configured rest allowance used by shift accounting.
type PositionRepository interface {
	// GetByName retrieves a position by its name.
	// Returns ObjectNotFoundError when the position is not configured.
	GetByName(ctx context.Context, name string) (worker.Position, error)
}
