// Package positionrepo provides read access to the position catalog: the
// per-position configuration consulted by shift accounting.
package positionrepo

import (
	"time"

	"shopfloor/internal/core/domain/model/worker"
)

// PositionDTO represents the database structure for the position catalog.
// ChillTime is the configured rest allowance, stored as nanoseconds.
type PositionDTO struct {
	Name      string        `gorm:"primaryKey"`
	ChillTime time.Duration `gorm:"type:bigint"`
}

// TableName specifies the database table name for position entities.
func (PositionDTO) TableName() string {
	return "positions"
}

// toDomain converts a database DTO to a position value object.
func toDomain(dto PositionDTO) (worker.Position, error) {
	return worker.NewPosition(dto.Name, dto.ChillTime)
}
