package order

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a customer order aggregating one or more production items.
// It is the aggregate root for order-level lifecycle management.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Status transitions follow the rules encoded in Status
//   - Order status is mutated only by the rollup triggers and explicit lifecycle
//     operations, never directly by item-status writes
//   - readyAt is stamped exactly when the order first reaches ReadyToShip
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the external, human-facing order number (opaque token on barcodes)
	number string

	// status represents the current state in the order lifecycle
	status Status

	// priority is the scheduling tag for the floor
	priority Priority

	// readyAt records when the order became ready to ship (nil before that)
	readyAt *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with the given priority.
// Validates identifier, order number, and priority.
func NewOrder(id kernel.UUID, number string, priority Priority) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id kernel.UUID, number string, status Status, priority Priority, readyAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, number, priority)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.readyAt = readyAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the external order number.
func (o *Order) Number() string {
	return o.number
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Priority returns the order's scheduling priority.
func (o *Order) Priority() Priority {
	return o.priority
}

// ReadyAt returns when the order became ready to ship, or nil.
func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

// Approve marks the order approved for production.
func (o *Order) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// StartProcessing flips the order to Processing. Fired by the production-start
// rollup trigger when the first item of an approved order enters Cutting.
func (o *Order) StartProcessing() error {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkReadyToShip flips the order to ReadyToShip and stamps the ready timestamp.
// Calling it on an order that is already ReadyToShip is a no-op: concurrent
// completion rollups for the same order may race and the write is idempotent.
func (o *Order) MarkReadyToShip(now time.Time) error {
	if o.status == ReadyToShip {
		return nil
	}

	newStatus, err := o.status.MarkReadyToShip()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.readyAt = &now
	return nil
}

// Ship marks the order shipped.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Complete marks the order completed. Final state.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel cancels the order. Final state.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setNumber validates and sets the external order number.
func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

// setPriority validates and sets the order's priority.
func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}
