package machinerepo

import (
	"context"
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/machine"
	"shopfloor/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMachineRepository implements MachineRepository using GORM.
type GormMachineRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMachineRepository creates a new GORM machine repository.
func NewGormMachineRepository(db *gorm.DB, tracker aggregateTracker) *GormMachineRepository {
	return &GormMachineRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new machine to the database.
func (r *GormMachineRepository) Add(ctx context.Context, aggregate *machine.Machine) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing machine to the database. All columns are written,
// so a released machine persists its cleared assignment.
func (r *GormMachineRepository) Update(ctx context.Context, aggregate *machine.Machine) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MachineDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a machine by ID.
func (r *GormMachineRepository) Get(ctx context.Context, id kernel.UUID) (*machine.Machine, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MachineDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("machine", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Acquire atomically claims a free, working machine for the given order.
// The predicate lives in the WHERE clause, so two concurrent claims on the
// same machine serialize at the database and exactly one sees an affected row.
func (r *GormMachineRepository) Acquire(ctx context.Context, machineID, orderID kernel.UUID) error {
	if err := machineID.Validate(); err != nil {
		return err
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&MachineDTO{}).
		Where("id = ? AND is_in_progress = ? AND is_broken = ?", machineID.Bytes(), false, false).
		Updates(map[string]any{
			"is_in_progress":       true,
			"order_in_progress_id": orderID.Bytes(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing machine from a lost claim.
		if _, err := r.Get(ctx, machineID); err != nil {
			return err
		}
		return errs.NewResourceConflictError("machine", machineID.String())
	}

	return nil
}
