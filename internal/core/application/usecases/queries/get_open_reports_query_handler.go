package queries

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenReportsQueryHandler retrieves unresolved breakage reports from the
// database. Reads bypass the aggregates and repositories: the response is a
// flat projection built straight from SQL.
type GetOpenReportsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenReportsQueryHandler creates a handler for open report queries.
// Requires a GORM database connection for query execution.
func NewGetOpenReportsQueryHandler(db *gorm.DB) GetOpenReportsQueryHandler {
	return GetOpenReportsQueryHandler{db: db}
}

// Handle executes the query to retrieve a worker's unresolved reports.
// Results are sorted oldest first so the longest-standing breakage is on top.
func (h GetOpenReportsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenReportsQuery,
) ([]GetOpenReportsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reports := make([]GetOpenReportsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			description,
			url,
			start_time
		FROM reports
		WHERE worker_id = ? AND is_solved = false
		ORDER BY start_time
	`, query.WorkerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var reportResp GetOpenReportsQueryResponse
		var id uuid.UUID
		var orderID *uuid.UUID
		var description, url string
		var startTime time.Time

		err = rows.Scan(
			&id,
			&orderID,
			&description,
			&url,
			&startTime,
		)
		if err != nil {
			return nil, err
		}

		reportID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		reportResp.ID = reportID

		if orderID != nil {
			oID, oErr := kernel.UUIDFromBytes((*orderID)[:])
			if oErr != nil {
				return nil, oErr
			}
			reportResp.OrderID = &oID
		}

		reportResp.Description = description
		reportResp.URL = url
		reportResp.StartTime = startTime
		reports = append(reports, reportResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}
