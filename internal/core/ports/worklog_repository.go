package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/worklog"
)

// WorkLogRepository defines the persistence contract for processing log entries.
// At most one open entry exists per item; the storage layer enforces this with
// a partial unique index.
type WorkLogRepository interface {
	// Add persists a new processing log entry.
	Add(ctx context.Context, entry *worklog.ProcessingLogEntry) error

	// Update persists changes to an existing entry, typically closing it.
	Update(ctx context.Context, entry *worklog.ProcessingLogEntry) error

	// GetOpenByItem retrieves the item's open entry, or nil when the item has
	// no work in progress.
	GetOpenByItem(ctx context.Context, itemID kernel.UUID) (*worklog.ProcessingLogEntry, error)
}
