package itemrepo

import (
	"context"
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/item"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormItemRepository creates a new GORM production item repository.
func NewGormItemRepository(db *gorm.DB, tracker aggregateTracker) *GormItemRepository {
	return &GormItemRepository{
		db:      db,
		tracker: tracker,
	}
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %w", ports.ErrStorageUnavailable, err)
}

// Add saves a new production item to the database.
func (r *GormItemRepository) Add(ctx context.Context, aggregate *item.ProductionItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return storageErr(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing production item to the database.
func (r *GormItemRepository) Update(ctx context.Context, aggregate *item.ProductionItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "LastStation", "Reference", "OrderID").
		Updates(&dto)
	if result.Error != nil {
		return storageErr(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a production item by ID.
func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*item.ProductionItem, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a production item and locks its row until the
// surrounding transaction finishes. Concurrent scans of one item serialize here.
func (r *GormItemRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*item.ProductionItem, error) {
	return r.get(ctx, id, true)
}

func (r *GormItemRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*item.ProductionItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ItemDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, storageErr(err)
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves every item of an order.
func (r *GormItemRepository) GetAllByOrder(
	ctx context.Context, orderID kernel.UUID,
) ([]*item.ProductionItem, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("reference, id").
		Find(&dtos).Error; err != nil {
		return nil, storageErr(err)
	}

	items := make([]*item.ProductionItem, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, aggregate)
	}

	return items, nil
}
