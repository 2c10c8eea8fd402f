package queries

import (
	"context"

	"workshop/internal/core/domain/model/item"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/station"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderItemsQueryHandler reads an order's items from the database.
type GetOrderItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderItemsQueryHandler creates a handler for order item queries.
func NewGetOrderItemsQueryHandler(db *gorm.DB) GetOrderItemsQueryHandler {
	return GetOrderItemsQueryHandler{db: db}
}

// Handle returns the order's items ordered by reference. Statuses are rendered
// as their display names; items never scanned have an empty last station.
func (h GetOrderItemsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderItemsQuery,
) ([]GetOrderItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetOrderItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			status,
			last_station
		FROM items
		WHERE order_id = ?
		ORDER BY reference, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var reference string
		var status int
		var lastStation *int

		if err = rows.Scan(&id, &reference, &status, &lastStation); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := GetOrderItemsQueryResponse{
			ItemID:    itemID,
			Reference: reference,
			Status:    item.Status(status).String(),
		}
		if lastStation != nil {
			resp.LastStation = station.Station(*lastStation).String()
		}
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
