package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShiftSummaryQueryHandler retrieves one shift's accounting row from the
// database. Durations are read back as raw nanosecond counts, the same shape
// the repository writes them in.
type GetShiftSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetShiftSummaryQueryHandler creates a handler for shift summary queries.
// Requires a GORM database connection for query execution.
func NewGetShiftSummaryQueryHandler(db *gorm.DB) GetShiftSummaryQueryHandler {
	return GetShiftSummaryQueryHandler{db: db}
}

// Handle executes the query to retrieve the shift's summary.
// Returns an ObjectNotFoundError when no shift with the given ID exists.
func (h GetShiftSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetShiftSummaryQuery,
) (GetShiftSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShiftSummaryQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			worker_id,
			start_time,
			end_time,
			num_ended_orders,
			time_total,
			good_time,
			bad_time,
			lost_time,
			total_bugs_time
		FROM shifts
		WHERE id = ?
	`, query.ShiftID().Bytes()).Row()

	var id, workerID uuid.UUID
	var startTime time.Time
	var endTime *time.Time
	var numEndedOrders *int
	var timeTotal, goodTime, badTime, lostTime, totalBugsTime *int64

	err := row.Scan(
		&id,
		&workerID,
		&startTime,
		&endTime,
		&numEndedOrders,
		&timeTotal,
		&goodTime,
		&badTime,
		&lostTime,
		&totalBugsTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShiftSummaryQueryResponse{},
			errs.NewObjectNotFoundError("shiftID", query.ShiftID().String())
	}
	if err != nil {
		return GetShiftSummaryQueryResponse{}, err
	}

	shiftID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetShiftSummaryQueryResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(workerID[:])
	if err != nil {
		return GetShiftSummaryQueryResponse{}, err
	}

	return GetShiftSummaryQueryResponse{
		ID:       shiftID,
		WorkerID: ownerID,

		StartTime: startTime,
		EndTime:   endTime,

		NumEndedOrders: numEndedOrders,
		TimeTotal:      asDuration(timeTotal),
		GoodTime:       asDuration(goodTime),
		BadTime:        asDuration(badTime),
		LostTime:       asDuration(lostTime),
		TotalBugsTime:  asDuration(totalBugsTime),
	}, nil
}

func asDuration(nanos *int64) *time.Duration {
	if nanos == nil {
		return nil
	}

	d := time.Duration(*nanos)
	return &d
}
