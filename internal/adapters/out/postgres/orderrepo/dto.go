// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Stage timestamps are nullable: a null means the stage was never reached.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkerID  uuid.UUID `gorm:"type:uuid;index"`
	MachineID uuid.UUID `gorm:"type:uuid;index"`
	ShiftID   uuid.UUID `gorm:"type:uuid;index"`

	PartName string
	NumParts int
	Stage    int

	StartTime        time.Time  `gorm:"type:timestamptz"`
	ScanTime         *time.Time `gorm:"type:timestamptz"`
	StartWorkingTime *time.Time `gorm:"type:timestamptz"`
	MachineStartTime *time.Time `gorm:"type:timestamptz"`
	MachineEndTime   *time.Time `gorm:"type:timestamptz"`
	EndWorkingTime   *time.Time `gorm:"type:timestamptz"`

	BugsTime   *time.Duration `gorm:"type:bigint"`
	EndedEarly bool

	HoldStarted *time.Time `gorm:"type:timestamptz"`
	HoldURL     string
	HoldEnded   *time.Time `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		WorkerID:  aggregate.WorkerID().Bytes(),
		MachineID: aggregate.MachineID().Bytes(),
		ShiftID:   aggregate.ShiftID().Bytes(),

		PartName: aggregate.PartName(),
		NumParts: aggregate.NumParts(),
		Stage:    int(aggregate.Stage()),

		StartTime:        aggregate.StartTime(),
		ScanTime:         aggregate.ScanTime(),
		StartWorkingTime: aggregate.StartWorkingTime(),
		MachineStartTime: aggregate.MachineStartTime(),
		MachineEndTime:   aggregate.MachineEndTime(),
		EndWorkingTime:   aggregate.EndWorkingTime(),

		BugsTime:   aggregate.BugsTime(),
		EndedEarly: aggregate.EndedEarly(),

		HoldStarted: aggregate.HoldStarted(),
		HoldURL:     aggregate.HoldURL(),
		HoldEnded:   aggregate.HoldEnded(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	machineID, err := kernel.UUIDFromBytes(dto.MachineID[:])
	if err != nil {
		return nil, err
	}

	shiftID, err := kernel.UUIDFromBytes(dto.ShiftID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:        id,
		WorkerID:  workerID,
		MachineID: machineID,
		ShiftID:   shiftID,

		PartName: dto.PartName,
		NumParts: dto.NumParts,
		Stage:    order.Stage(dto.Stage),

		StartTime:        dto.StartTime,
		ScanTime:         dto.ScanTime,
		StartWorkingTime: dto.StartWorkingTime,
		MachineStartTime: dto.MachineStartTime,
		MachineEndTime:   dto.MachineEndTime,
		EndWorkingTime:   dto.EndWorkingTime,

		BugsTime:   dto.BugsTime,
		EndedEarly: dto.EndedEarly,

		HoldStarted: dto.HoldStarted,
		HoldURL:     dto.HoldURL,
		HoldEnded:   dto.HoldEnded,
	})
}
