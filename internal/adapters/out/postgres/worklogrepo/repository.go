package worklogrepo

import (
	"context"
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/worklog"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkLogRepository implements WorkLogRepository using GORM.
type GormWorkLogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkLogRepository creates a new GORM processing log repository.
func NewGormWorkLogRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkLogRepository {
	return &GormWorkLogRepository{
		db:      db,
		tracker: tracker,
	}
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %w", ports.ErrStorageUnavailable, err)
}

// Add saves a new processing log entry to the database.
func (r *GormWorkLogRepository) Add(ctx context.Context, entry *worklog.ProcessingLogEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return storageErr(err)
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// Update saves an existing processing log entry, typically after closing it.
func (r *GormWorkLogRepository) Update(ctx context.Context, entry *worklog.ProcessingLogEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	result := r.db.WithContext(ctx).Model(&ProcessingLogDTO{}).
		Where("id = ?", dto.ID).
		Select("EndedAt", "DurationSeconds", "Note").
		Updates(&dto)
	if result.Error != nil {
		return storageErr(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("processing log entry", entry.ID().String())
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// GetOpenByItem retrieves the item's open entry, or nil when no work is in
// progress. A missing open entry is a normal state, not an error.
func (r *GormWorkLogRepository) GetOpenByItem(
	ctx context.Context, itemID kernel.UUID,
) (*worklog.ProcessingLogEntry, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	var dto ProcessingLogDTO
	err := r.db.WithContext(ctx).
		First(&dto, "item_id = ? AND ended_at IS NULL", itemID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(err)
	}

	return toDomain(dto)
}
