package queuerepo

import (
	"context"
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/printqueue"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres error code raised when the partial unique
// index on unprinted entries rejects a duplicate.
const uniqueViolation = "23505"

// foreignKeyViolation is the Postgres error code raised when the queued item
// does not exist.
const foreignKeyViolation = "23503"

// GormQueueRepository implements QueueRepository using GORM.
type GormQueueRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormQueueRepository creates a new GORM print queue repository.
func NewGormQueueRepository(db *gorm.DB, tracker aggregateTracker) *GormQueueRepository {
	return &GormQueueRepository{
		db:      db,
		tracker: tracker,
	}
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %w", ports.ErrStorageUnavailable, err)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == foreignKeyViolation
}

// Add saves a new queue entry. Duplicate unprinted entries for one item are
// rejected by the database and surface as AlreadyQueuedError; entries for
// items that do not exist surface as ObjectNotFoundError.
func (r *GormQueueRepository) Add(ctx context.Context, entry *printqueue.QueueEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return &ports.AlreadyQueuedError{ItemID: entry.ItemID()}
		}
		if isForeignKeyViolation(err) {
			return errs.NewObjectNotFoundErrorWithCause("item", entry.ItemID().String(), err)
		}
		return storageErr(err)
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// GetAllUnprinted retrieves unprinted entries oldest first. limit 0 means all.
func (r *GormQueueRepository) GetAllUnprinted(
	ctx context.Context, limit int,
) ([]*printqueue.QueueEntry, error) {
	tx := r.db.WithContext(ctx).
		Where("NOT printed").
		Order("added_at, id")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var dtos []QueueEntryDTO
	if err := tx.Find(&dtos).Error; err != nil {
		return nil, storageErr(err)
	}

	return toDomainAll(dtos)
}

// CountUnprinted returns the number of unprinted entries.
func (r *GormQueueRepository) CountUnprinted(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&QueueEntryDTO{}).
		Where("NOT printed").
		Count(&count).Error
	if err != nil {
		return 0, storageErr(err)
	}

	return int(count), nil
}

// GetByIDs retrieves entries by identifier. Every requested entry must exist.
func (r *GormQueueRepository) GetByIDs(
	ctx context.Context, ids []kernel.UUID,
) ([]*printqueue.QueueEntry, error) {
	raw := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []QueueEntryDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, storageErr(err)
	}

	if len(dtos) != len(ids) {
		return nil, ports.ErrQueueEntryNotFound
	}

	return toDomainAll(dtos)
}

// MarkPrinted flips the given entries to printed in one statement. When fewer
// rows change than requested, the batch is re-queried to tell a missing entry
// apart from an already printed one, and nothing is modified.
func (r *GormQueueRepository) MarkPrinted(
	ctx context.Context, ids []kernel.UUID, printedBy kernel.UUID,
) error {
	if err := printedBy.Validate(); err != nil {
		return err
	}

	raw := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		raw = append(raw, id.Bytes())
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE print_queue_entries
		SET printed = TRUE, printed_at = NOW(), printed_by = ?
		WHERE id IN ? AND NOT printed
	`, printedBy.Bytes(), raw)
	if result.Error != nil {
		return storageErr(result.Error)
	}

	if result.RowsAffected == int64(len(ids)) {
		return nil
	}

	// Partial update: the transaction will be rolled back by the caller, so the
	// rows already flipped never commit. A shortfall with every entry present
	// means some were printed before this statement ran.
	if _, err := r.GetByIDs(ctx, ids); err != nil {
		return err
	}

	return printqueue.ErrAlreadyPrinted
}

func toDomainAll(dtos []QueueEntryDTO) ([]*printqueue.QueueEntry, error) {
	entries := make([]*printqueue.QueueEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
