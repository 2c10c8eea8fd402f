// Package itemrepo provides data transfer objects and mapping functions for
// production item persistence. It implements the repository pattern for the
// ProductionItem aggregate, converting between domain entities and rows.
package itemrepo

import (
	"workshop/internal/core/domain/model/item"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/station"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting production items.
// Indexed by order for rollup queries.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Reference   string    `gorm:"type:varchar(64)"`
	Status      int
	LastStation *int `gorm:"type:smallint"`
}

// TableName specifies the database table name for production items.
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts a ProductionItem aggregate to its database representation.
func fromDomain(aggregate *item.ProductionItem) ItemDTO {
	var lastStation *int
	if s := aggregate.LastStation(); s != nil {
		raw := int(*s)
		lastStation = &raw
	}

	return ItemDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		Reference:   aggregate.Reference(),
		Status:      int(aggregate.Status()),
		LastStation: lastStation,
	}
}

// toDomain converts a database row to a ProductionItem aggregate.
func toDomain(dto ItemDTO) (*item.ProductionItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var lastStation *station.Station
	if dto.LastStation != nil {
		s := station.Station(*dto.LastStation)
		lastStation = &s
	}

	return item.RestoreProductionItem(id, orderID, dto.Reference, item.Status(dto.Status), lastStation)
}
