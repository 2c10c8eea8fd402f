// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the Order
// aggregate, converting between domain entities and rows.
package orderrepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting orders. The order
// number is the business key printed inside item barcodes and must be unique.
type OrderDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number   string    `gorm:"type:varchar(32);uniqueIndex"`
	Status   int
	Priority int
	ReadyAt  *time.Time
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an Order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:       aggregate.ID().Bytes(),
		Number:   aggregate.Number(),
		Status:   int(aggregate.Status()),
		Priority: int(aggregate.Priority()),
		ReadyAt:  aggregate.ReadyAt(),
	}
}

// toDomain converts a database row to an Order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, dto.Number, order.Status(dto.Status), order.Priority(dto.Priority), dto.ReadyAt)
}
