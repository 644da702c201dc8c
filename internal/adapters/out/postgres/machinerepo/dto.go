// Package machinerepo provides data transfer objects and mapping functions for
// machine persistence. Besides the usual aggregate mapping, the repository
// implements the atomic machine claim used when starting an order.
package machinerepo

import (
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/machine"

	"github.com/google/uuid"
)

// MachineDTO represents the database structure for persisting machine aggregates.
type MachineDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"uniqueIndex"`
	Type string

	IsBroken     bool
	IsInProgress bool

	OrderInProgressID *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for machine entities.
func (MachineDTO) TableName() string {
	return "machines"
}

// fromDomain converts a machine domain aggregate to its database representation.
func fromDomain(aggregate *machine.Machine) MachineDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderInProgress(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return MachineDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Type: aggregate.Type(),

		IsBroken:     aggregate.IsBroken(),
		IsInProgress: aggregate.IsInProgress(),

		OrderInProgressID: orderID,
	}
}

// toDomain converts a database DTO to a machine domain aggregate using RestoreMachine.
func toDomain(dto MachineDTO) (*machine.Machine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderInProgressID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderInProgressID)[:])
		if orderErr != nil {
			return nil, orderErr
		}

		orderID = &oID
	}

	return machine.RestoreMachine(id, dto.Name, dto.Type, dto.IsBroken, dto.IsInProgress, orderID)
}
