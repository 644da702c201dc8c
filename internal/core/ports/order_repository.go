package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllForShift retrieves every order opened during the given shift,
	// ended or not. The closing pipeline derives shift metrics from this set.
	GetAllForShift(ctx context.Context, shiftID kernel.UUID) ([]*order.Order, error)

	// Delete removes an order aggregate from storage. Used only for aborting
	// orders that never advanced past creation.
	Delete(ctx context.Context, id kernel.UUID) error
}
