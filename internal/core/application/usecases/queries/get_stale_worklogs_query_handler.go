package queries

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/station"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStaleWorkLogsQueryHandler reads long-open processing log entries.
type GetStaleWorkLogsQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleWorkLogsQueryHandler creates a handler for stale work log queries.
func NewGetStaleWorkLogsQueryHandler(db *gorm.DB) GetStaleWorkLogsQueryHandler {
	return GetStaleWorkLogsQueryHandler{db: db}
}

// Handle returns open entries started before now minus the threshold, oldest first.
func (h GetStaleWorkLogsQueryHandler) Handle(
	ctx context.Context,
	query GetStaleWorkLogsQuery,
) ([]GetStaleWorkLogsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.OlderThan())
	entries := make([]GetStaleWorkLogsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.item_id,
			i.reference,
			l.station,
			l.worker_id,
			l.started_at
		FROM processing_logs l
		JOIN items i ON i.id = l.item_id
		WHERE l.ended_at IS NULL AND l.started_at < ?
		ORDER BY l.started_at
	`, cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entryID, itemID, workerID uuid.UUID
		var reference string
		var stationValue int
		var startedAt time.Time

		if err = rows.Scan(&entryID, &itemID, &reference, &stationValue, &workerID, &startedAt); err != nil {
			return nil, err
		}

		resp := GetStaleWorkLogsQueryResponse{
			ItemReference: reference,
			Station:       station.Station(stationValue),
			StartedAt:     startedAt,
		}
		if resp.EntryID, err = kernel.UUIDFromBytes(entryID[:]); err != nil {
			return nil, err
		}
		if resp.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		if resp.WorkerID, err = kernel.UUIDFromBytes(workerID[:]); err != nil {
			return nil, err
		}

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
