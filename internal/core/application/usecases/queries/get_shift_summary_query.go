package queries

import (
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var (
	ErrGetShiftSummaryQueryIsNotConstructed = errors.New(
		"GetShiftSummaryQuery must be created via NewGetShiftSummaryQuery constructor",
	)
)

// GetShiftSummaryQuery retrieves the time accounting breakdown for one shift.
// Before the closing pipeline has run, the derived fields come back nil.
type GetShiftSummaryQuery struct {
	shiftID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShiftSummaryQuery creates a query for a shift's accounting summary.
func NewGetShiftSummaryQuery(shiftID kernel.UUID) (GetShiftSummaryQuery, error) {
	if err := shiftID.Validate(); err != nil {
		return GetShiftSummaryQuery{}, err
	}

	return GetShiftSummaryQuery{
		shiftID: shiftID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShiftSummaryQueryIsNotConstructed if validation fails.
func (q GetShiftSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetShiftSummaryQueryIsNotConstructed)
}

// ShiftID returns the shift whose summary is requested.
func (q GetShiftSummaryQuery) ShiftID() kernel.UUID {
	return q.shiftID
}

// GetShiftSummaryQueryResponse is the accounting breakdown of a shift.
// The pointer fields stay nil until the closing pipeline derives them;
// a fully accounted shift satisfies
// GoodTime + BadTime + TotalBugsTime + LostTime + chill == TimeTotal.
type GetShiftSummaryQueryResponse struct {
	ID       kernel.UUID
	WorkerID kernel.UUID

	StartTime time.Time
	EndTime   *time.Time

	NumEndedOrders *int
	TimeTotal      *time.Duration
	GoodTime       *time.Duration
	BadTime        *time.Duration
	LostTime       *time.Duration
	TotalBugsTime  *time.Duration
}
