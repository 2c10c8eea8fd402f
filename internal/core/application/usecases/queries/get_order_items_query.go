package queries

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetOrderItemsQueryIsNotConstructed = errors.New(
	"GetOrderItemsQuery must be created via NewGetOrderItemsQuery constructor",
)

// GetOrderItemsQuery retrieves every item of one order with its workflow state,
// backing the order progress screen.
type GetOrderItemsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderItemsQuery creates a validated order items query.
func NewGetOrderItemsQuery(orderID kernel.UUID) (GetOrderItemsQuery, error) {
	q := GetOrderItemsQuery{guard: guard.NewConstructorGuard()}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderItemsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderItemsQueryIsNotConstructed)
}

// OrderID returns the order whose items are requested.
func (q GetOrderItemsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderItemsQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderItemsQueryResponse represents one item row of the order progress screen.
type GetOrderItemsQueryResponse struct {
	ItemID      kernel.UUID
	Reference   string
	Status      string
	LastStation string
}
