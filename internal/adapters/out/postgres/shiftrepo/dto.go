// Package shiftrepo provides data transfer objects and mapping functions for
// shift persistence. This package implements the repository pattern for the
// shift domain aggregate, handling the conversion between domain entities and
// database representations.
package shiftrepo

import (
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/shift"

	"github.com/google/uuid"
)

// ShiftDTO represents the database structure for persisting shift aggregates.
// Durations are stored as nanosecond counts; nulls mean "not yet derived".
type ShiftDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkerID uuid.UUID `gorm:"type:uuid;index"`

	StartTime time.Time  `gorm:"type:timestamptz"`
	EndTime   *time.Time `gorm:"type:timestamptz"`

	NumEndedOrders *int
	TimeTotal      *time.Duration `gorm:"type:bigint"`
	GoodTime       *time.Duration `gorm:"type:bigint"`
	BadTime        *time.Duration `gorm:"type:bigint"`
	LostTime       *time.Duration `gorm:"type:bigint"`
	TotalBugsTime  *time.Duration `gorm:"type:bigint"`
}

// TableName specifies the database table name for shift entities.
func (ShiftDTO) TableName() string {
	return "shifts"
}

// fromDomain converts a shift domain aggregate to its database representation.
func fromDomain(aggregate *shift.Shift) ShiftDTO {
	return ShiftDTO{
		ID:       aggregate.ID().Bytes(),
		WorkerID: aggregate.WorkerID().Bytes(),

		StartTime: aggregate.StartTime(),
		EndTime:   aggregate.EndTime(),

		NumEndedOrders: aggregate.NumEndedOrders(),
		TimeTotal:      aggregate.TimeTotal(),
		GoodTime:       aggregate.GoodTime(),
		BadTime:        aggregate.BadTime(),
		LostTime:       aggregate.LostTime(),
		TotalBugsTime:  aggregate.TotalBugsTime(),
	}
}

// toDomain converts a database DTO to a shift domain aggregate using RestoreShift.
func toDomain(dto ShiftDTO) (*shift.Shift, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	return shift.RestoreShift(shift.RestoreShiftParams{
		ID:       id,
		WorkerID: workerID,

		StartTime: dto.StartTime,
		EndTime:   dto.EndTime,

		NumEndedOrders: dto.NumEndedOrders,
		TimeTotal:      dto.TimeTotal,
		GoodTime:       dto.GoodTime,
		BadTime:        dto.BadTime,
		LostTime:       dto.LostTime,
		TotalBugsTime:  dto.TotalBugsTime,
	})
}
