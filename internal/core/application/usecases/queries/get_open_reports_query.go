package queries

import (
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var (
	ErrGetOpenReportsQueryIsNotConstructed = errors.New(
		"GetOpenReportsQuery must be created via NewGetOpenReportsQuery constructor",
	)
)

// GetOpenReportsQuery retrieves all unresolved breakage reports filed by a
// worker. Open reports block the worker's shift from closing cleanly, so the
// floor UI shows them as a checklist.
//
// Example:
//
//	query, err := NewGetOpenReportsQuery(workerID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOpenReportsQueryHandler(db)
//
//	reports, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open reports: %w", err)
//	}
//
//	fmt.Printf("%d reports still open\n", len(reports))
type GetOpenReportsQuery struct {
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOpenReportsQuery creates a query for a worker's unresolved reports.
func NewGetOpenReportsQuery(workerID kernel.UUID) (GetOpenReportsQuery, error) {
	if err := workerID.Validate(); err != nil {
		return GetOpenReportsQuery{}, err
	}

	return GetOpenReportsQuery{
		workerID: workerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOpenReportsQueryIsNotConstructed if validation fails.
func (q GetOpenReportsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenReportsQueryIsNotConstructed)
}

// WorkerID returns the worker whose open reports are requested.
func (q GetOpenReportsQuery) WorkerID() kernel.UUID {
	return q.workerID
}

// GetOpenReportsQueryResponse represents one unresolved breakage report.
// URL points back to the screen the worker was on when the machine broke;
// OrderID is nil for floor-level incidents.
type GetOpenReportsQueryResponse struct {
	ID          kernel.UUID
	OrderID     *kernel.UUID
	Description string
	URL         string
	StartTime   time.Time
}
