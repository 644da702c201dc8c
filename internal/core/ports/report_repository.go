package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/report"
)

// ReportRepository defines the persistence contract for breakage reports.
type ReportRepository interface {
	// Add persists a new report aggregate to storage.
	Add(ctx context.Context, aggregate *report.Report) error

	// Update persists changes to an existing report aggregate.
	Update(ctx context.Context, aggregate *report.Report) error

	// Get retrieves a report aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*report.Report, error)

	// GetSolvedForOrder retrieves the solved reports filed against an order.
	// Their durations make up the order's bug time.
	GetSolvedForOrder(ctx context.Context, orderID kernel.UUID) ([]*report.Report, error)
}
