package positionrepo

import (
	"context"
	"errors"

	"shopfloor/internal/core/domain/model/worker"
	"shopfloor/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPositionRepository implements PositionRepository using GORM.
// The catalog is read-only from the application's point of view.
type GormPositionRepository struct {
	db *gorm.DB
}

// NewGormPositionRepository creates a new GORM position repository.
func NewGormPositionRepository(db *gorm.DB) *GormPositionRepository {
	return &GormPositionRepository{db: db}
}

// GetByName retrieves a position by its name.
func (r *GormPositionRepository) GetByName(ctx context.Context, name string) (worker.Position, error) {
	if name == "" {
		return worker.Position{}, errs.NewValueIsRequiredError("name")
	}

	var dto PositionDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return worker.Position{}, errs.NewObjectNotFoundError("position", name)
		}
		return worker.Position{}, err
	}

	return toDomain(dto)
}
