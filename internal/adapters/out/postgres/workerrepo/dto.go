// Package workerrepo provides data transfer objects and mapping functions for
// worker persistence.
package workerrepo

import (
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/worker"

	"github.com/google/uuid"
)

// WorkerDTO represents the database structure for persisting workers.
type WorkerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	PositionName string `gorm:"index"`
}

// TableName specifies the database table name for worker entities.
func (WorkerDTO) TableName() string {
	return "workers"
}

// fromDomain converts a worker to its database representation.
func fromDomain(aggregate *worker.Worker) WorkerDTO {
	return WorkerDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		PositionName: aggregate.PositionName(),
	}
}

// toDomain converts a database DTO to a worker.
func toDomain(dto WorkerDTO) (*worker.Worker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return worker.NewWorker(id, dto.Name, dto.PositionName)
}
