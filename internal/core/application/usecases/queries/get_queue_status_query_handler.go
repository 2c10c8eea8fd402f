package queries

import (
	"context"
	"time"

	"workshop/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetQueueStatusQueryHandler reads queue counters from the database.
type GetQueueStatusQueryHandler struct {
	db     *gorm.DB
	policy services.BatchPolicy
}

// NewGetQueueStatusQueryHandler creates a handler bound to the given batch policy.
func NewGetQueueStatusQueryHandler(db *gorm.DB, policy services.BatchPolicy) GetQueueStatusQueryHandler {
	return GetQueueStatusQueryHandler{db: db, policy: policy}
}

// Handle returns unprinted/printed counts and the age of the oldest waiting entry.
func (h GetQueueStatusQueryHandler) Handle(
	ctx context.Context,
	query GetQueueStatusQuery,
) (GetQueueStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQueueStatusQueryResponse{}, err
	}

	var unprinted, printed int
	var oldest *time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE NOT printed),
			COUNT(*) FILTER (WHERE printed),
			MIN(added_at) FILTER (WHERE NOT printed)
		FROM print_queue_entries
	`).Row()

	if err := row.Scan(&unprinted, &printed, &oldest); err != nil {
		return GetQueueStatusQueryResponse{}, err
	}

	return GetQueueStatusQueryResponse{
		UnprintedCount:    unprinted,
		PrintedCount:      printed,
		OldestUnprintedAt: oldest,
		StandardBatchSize: h.policy.StandardSize(),
		CanPrintFullBatch: h.policy.CanPrint(unprinted),
	}, nil
}
