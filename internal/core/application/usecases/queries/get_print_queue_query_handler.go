package queries

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPrintQueueQueryHandler reads the shared print queue from the database.
type GetPrintQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetPrintQueueQueryHandler creates a handler for print queue queries.
func NewGetPrintQueueQueryHandler(db *gorm.DB) GetPrintQueueQueryHandler {
	return GetPrintQueueQueryHandler{db: db}
}

// Handle returns every unprinted entry, oldest first, joined with its item and
// order so the queue screen can render references without extra lookups.
// Printed entries are excluded: once confirmed they are done, and listing them
// alongside waiting work would invite double prints.
func (h GetPrintQueueQueryHandler) Handle(
	ctx context.Context,
	query GetPrintQueueQuery,
) ([]GetPrintQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetPrintQueueQueryResponse, 0)

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
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entryID, itemID, addedBy uuid.UUID
		var reference, number string
		var addedAt time.Time

		if err = rows.Scan(&entryID, &itemID, &reference, &number, &addedAt, &addedBy); err != nil {
			return nil, err
		}

		resp, convErr := buildQueueResponse(entryID, itemID, addedBy, reference, number, addedAt)
		if convErr != nil {
			return nil, convErr
		}
		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func buildQueueResponse(
	entryID, itemID, addedBy uuid.UUID, reference, number string, addedAt time.Time,
) (GetPrintQueueQueryResponse, error) {
	eID, err := kernel.UUIDFromBytes(entryID[:])
	if err != nil {
		return GetPrintQueueQueryResponse{}, err
	}
	iID, err := kernel.UUIDFromBytes(itemID[:])
	if err != nil {
		return GetPrintQueueQueryResponse{}, err
	}
	by, err := kernel.UUIDFromBytes(addedBy[:])
	if err != nil {
		return GetPrintQueueQueryResponse{}, err
	}

	return GetPrintQueueQueryResponse{
		EntryID:       eID,
		ItemID:        iID,
		ItemReference: reference,
		OrderNumber:   number,
		AddedAt:       addedAt,
		AddedBy:       by,
	}, nil
}
