package reportrepo

import (
	"context"
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/report"
	"shopfloor/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReportRepository implements ReportRepository using GORM.
type GormReportRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReportRepository creates a new GORM report repository.
func NewGormReportRepository(db *gorm.DB, tracker aggregateTracker) *GormReportRepository {
	return &GormReportRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new report to the database.
func (r *GormReportRepository) Add(ctx context.Context, aggregate *report.Report) error {
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

// Update saves an existing report to the database.
func (r *GormReportRepository) Update(ctx context.Context, aggregate *report.Report) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ReportDTO{}).
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

// Get retrieves a report by ID.
func (r *GormReportRepository) Get(ctx context.Context, id kernel.UUID) (*report.Report, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReportDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("report", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetSolvedForOrder retrieves the solved reports filed against an order.
func (r *GormReportRepository) GetSolvedForOrder(ctx context.Context, orderID kernel.UUID) ([]*report.Report, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReportDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND is_solved = ?", orderID.Bytes(), true).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	reports := make([]*report.Report, 0, len(dtos))
	for _, dto := range dtos {
		rep, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}

	return reports, nil
}
