package item

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/station"
	"workshop/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when a ProductionItem instance was not
	// created through NewProductionItem or RestoreProductionItem.
	ErrItemIsNotConstructed = errors.New(
		"ProductionItem must be created via NewProductionItem or RestoreProductionItem")

	// ErrBackwardTransition is returned when a status write would move an item to a
	// status that is not strictly further along the workflow.
	ErrBackwardTransition = errors.New("item status can only move forward in the workflow")
)

// ProductionItem represents one physical manufacturing unit moving through the
// production line. It is the aggregate root for scan-driven status tracking.
//
// Invariants:
//   - Must have a valid unique identifier and owning order reference
//   - Status only ever moves to a status with a strictly greater workflow index
//   - The last station that scanned the item is recorded with every transition;
//     it may be absent on items restored from legacy data
//   - Can only be created through NewProductionItem or RestoreProductionItem
type ProductionItem struct {
	// id is the unique identifier for the item
	id kernel.UUID

	// orderID references the owning order
	orderID kernel.UUID

	// reference is the opaque item token printed on the barcode
	reference string

	// status is the current position in the production workflow
	status Status

	// lastStation is the station that performed the most recent scan.
	// Nil on legacy items that predate last-station bookkeeping.
	lastStation *station.Station

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewProductionItem creates a new ProductionItem in NotStarted status with no
// scan history. This is the only way to create a brand-new item.
func NewProductionItem(id, orderID kernel.UUID, reference string) (*ProductionItem, error) {
	item := &ProductionItem{
		status:        NotStarted,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setReference(reference),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreProductionItem reconstructs an item from persistence, including its
// current status and optional last-scanning station.
func RestoreProductionItem(
	id, orderID kernel.UUID, reference string, status Status, lastStation *station.Station,
) (*ProductionItem, error) {
	item, err := NewProductionItem(id, orderID, reference)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if lastStation != nil {
		if err = lastStation.Validate(); err != nil {
			return nil, err
		}
	}

	item.status = status
	item.lastStation = lastStation
	return item, nil
}

// Validate ensures the ProductionItem instance was properly constructed.
func (i *ProductionItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by their unique identifiers.
func (i *ProductionItem) IsEqual(other *ProductionItem) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *ProductionItem) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the owning order.
func (i *ProductionItem) OrderID() kernel.UUID {
	return i.orderID
}

// Reference returns the opaque item token printed on the barcode.
func (i *ProductionItem) Reference() string {
	return i.reference
}

// Status returns the current workflow status.
func (i *ProductionItem) Status() Status {
	return i.status
}

// LastStation returns the station that performed the most recent scan,
// or nil when no scan history is available (legacy data).
func (i *ProductionItem) LastStation() *station.Station {
	return i.lastStation
}

// ApplyTransition moves the item to newStatus as the result of a scan at the given
// station, recording the station as the item's last scanner.
//
// The transition must already have been approved by the transition rules; this
// method re-checks the monotonicity invariant as a final guard: the new status
// must be strictly further along the workflow than the current one.
func (i *ProductionItem) ApplyTransition(newStatus Status, scannedAt station.Station) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if err := scannedAt.Validate(); err != nil {
		return err
	}

	if !newStatus.After(i.status) {
		return fmt.Errorf("%w: %s -> %s", ErrBackwardTransition, i.status, newStatus)
	}

	i.status = newStatus
	at := scannedAt
	i.lastStation = &at
	return nil
}

// setID validates and sets the item's unique identifier.
func (i *ProductionItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// setOrderID validates and sets the owning order reference.
func (i *ProductionItem) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

// setReference validates and sets the barcode item token.
func (i *ProductionItem) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	i.reference = reference
	return nil
}
