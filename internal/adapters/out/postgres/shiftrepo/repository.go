package shiftrepo

import (
	"context"
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/shift"
	"shopfloor/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShiftRepository implements ShiftRepository using GORM.
type GormShiftRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShiftRepository creates a new GORM shift repository.
func NewGormShiftRepository(db *gorm.DB, tracker aggregateTracker) *GormShiftRepository {
	return &GormShiftRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shift to the database.
func (r *GormShiftRepository) Add(ctx context.Context, aggregate *shift.Shift) error {
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

// Update saves an existing shift to the database. All columns are written,
// so fields that moved back to null are persisted as null.
func (r *GormShiftRepository) Update(ctx context.Context, aggregate *shift.Shift) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShiftDTO{}).
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

// Get retrieves a shift by ID.
func (r *GormShiftRepository) Get(ctx context.Context, id kernel.UUID) (*shift.Shift, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShiftDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shift", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLastForWorker retrieves the worker's most recently opened shift.
func (r *GormShiftRepository) GetLastForWorker(ctx context.Context, workerID kernel.UUID) (*shift.Shift, error) {
	if err := workerID.Validate(); err != nil {
		return nil, err
	}

	var dto ShiftDTO
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID.Bytes()).
		Order("start_time DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shift", "last for worker "+workerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetStuckClosed retrieves closed shifts whose accounting never finished.
func (r *GormShiftRepository) GetStuckClosed(ctx context.Context) ([]*shift.Shift, error) {
	var dtos []ShiftDTO
	err := r.db.WithContext(ctx).
		Where("end_time IS NOT NULL AND lost_time IS NULL").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	shifts := make([]*shift.Shift, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}

	return shifts, nil
}
