// Package ports defines repository interfaces for the production tracking domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/item"
	"workshop/internal/core/domain/model/kernel"
)

// ErrStorageUnavailable wraps transient storage failures (lost connection,
// timeout). Callers may retry; errors.Is against it to distinguish from
// business rejections.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ItemRepository defines the persistence contract for production item aggregates.
type ItemRepository interface {
	// Add persists a new production item aggregate to storage.
	Add(ctx context.Context, aggregate *item.ProductionItem) error

	// Update persists changes to an existing production item aggregate.
	Update(ctx context.Context, aggregate *item.ProductionItem) error

	// Get retrieves a production item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*item.ProductionItem, error)

	// GetForUpdate retrieves a production item and locks its row for the
	// remainder of the surrounding transaction. Concurrent scans of the same
	// item serialize on this lock, so transition decisions always see the
	// latest committed status.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*item.ProductionItem, error)

	// GetAllByOrder retrieves every item belonging to the given order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*item.ProductionItem, error)
}
