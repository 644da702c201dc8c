// Package reportrepo provides data transfer objects and mapping functions for
// breakage report persistence.
package reportrepo

import (
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/report"

	"github.com/google/uuid"
)

// ReportDTO represents the database structure for persisting breakage reports.
// OrderID is nullable: floor-level incidents are filed without an order.
type ReportDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WorkerID uuid.UUID  `gorm:"type:uuid;index"`
	OrderID  *uuid.UUID `gorm:"type:uuid;index"`

	Description string
	URL         string

	StartTime time.Time  `gorm:"type:timestamptz"`
	EndTime   *time.Time `gorm:"type:timestamptz"`
	IsSolved  bool
}

// TableName specifies the database table name for report entities.
func (ReportDTO) TableName() string {
	return "reports"
}

// fromDomain converts a report domain aggregate to its database representation.
func fromDomain(aggregate *report.Report) ReportDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return ReportDTO{
		ID:       aggregate.ID().Bytes(),
		WorkerID: aggregate.WorkerID().Bytes(),
		OrderID:  orderID,

		Description: aggregate.Description(),
		URL:         aggregate.URL(),

		StartTime: aggregate.StartTime(),
		EndTime:   aggregate.EndTime(),
		IsSolved:  aggregate.IsSolved(),
	}
}

// toDomain converts a database DTO to a report domain aggregate using RestoreReport.
func toDomain(dto ReportDTO) (*report.Report, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}

		orderID = &oID
	}

	return report.RestoreReport(
		id, workerID, orderID,
		dto.Description, dto.URL, dto.StartTime,
		dto.EndTime, dto.IsSolved,
	)
}
