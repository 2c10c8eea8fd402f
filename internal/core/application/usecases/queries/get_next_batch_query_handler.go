package queries

import (
	"context"
	"time"

	"workshop/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNextBatchQueryHandler selects the oldest unprinted entries for printing.
// The handler only reads; confirming the print run is MarkBatchPrintedCommand's
// job, so a crashed printer leaves the entries queued.
type GetNextBatchQueryHandler struct {
	db     *gorm.DB
	policy services.BatchPolicy
}

// NewGetNextBatchQueryHandler creates a handler bound to the given batch policy.
func NewGetNextBatchQueryHandler(db *gorm.DB, policy services.BatchPolicy) GetNextBatchQueryHandler {
	return GetNextBatchQueryHandler{db: db, policy: policy}
}

// Handle returns the next batch, capped at the standard size. An empty queue
// yields ErrQueueIsEmpty; fewer entries than a full batch yield ErrBatchNotReady
// unless the query allows a partial batch.
func (h GetNextBatchQueryHandler) Handle(
	ctx context.Context,
	query GetNextBatchQuery,
) (GetNextBatchQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNextBatchQueryResponse{}, err
	}

	entries := make([]GetPrintQueueQueryResponse, 0, h.policy.StandardSize())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			q.id,
			q.item_id,
			i.reference,
			o.number,
			q.added_at,
			q.added_by
		FROM print_queue_entries q
		JOIN items i ON i.id = q.item_id
		JOIN orders o ON o.id = i.order_id
		WHERE NOT q.printed
		ORDER BY q.added_at, q.id
		LIMIT ?
	`, h.policy.StandardSize()).Rows()
	if err != nil {
		return GetNextBatchQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var entryID, itemID, addedBy uuid.UUID
		var reference, number string
		var addedAt time.Time

		if err = rows.Scan(&entryID, &itemID, &reference, &number, &addedAt, &addedBy); err != nil {
			return GetNextBatchQueryResponse{}, err
		}

		resp, convErr := buildQueueResponse(entryID, itemID, addedBy, reference, number, addedAt)
		if convErr != nil {
			return GetNextBatchQueryResponse{}, convErr
		}
		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return GetNextBatchQueryResponse{}, err
	}

	switch h.policy.Evaluate(len(entries)) {
	case services.BatchNothingToPrint:
		return GetNextBatchQueryResponse{}, ErrQueueIsEmpty
	case services.BatchRequiresConfirmation:
		if !query.AllowPartial() {
			return GetNextBatchQueryResponse{}, ErrBatchNotReady
		}
		return GetNextBatchQueryResponse{Entries: entries, IsPartial: true}, nil
	default:
		return GetNextBatchQueryResponse{Entries: entries}, nil
	}
}
