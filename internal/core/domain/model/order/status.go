package order

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Status represents the aggregate lifecycle state of an order. It is a coarser,
// independent enumeration from the per-item production workflow: item scans never
// write order status directly, only the rollup rules do.
//
// State transitions:
//
//	Pending ──> Approved ──> Processing ──> ReadyToShip ──> Shipped ──> Completed
//	    │            │             │              │
//	    └────────────┴─────────────┴──────────────┴──> Cancelled
//
// Status is a value object that validates state transitions and provides string
// representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Approved indicates the order has been approved for production.
	Approved

	// Processing indicates production has started on at least one item.
	Processing

	// ReadyToShip indicates every production item of the order is Ready.
	ReadyToShip

	// Shipped indicates the order has left the building.
	Shipped

	// Completed indicates the order lifecycle finished successfully. Final state.
	Completed

	// Cancelled indicates the order was cancelled before completion. Final state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Pending:     "Pending",
		Approved:    "Approved",
		Processing:  "Processing",
		ReadyToShip: "ReadyToShip",
		Shipped:     "Shipped",
		Completed:   "Completed",
		Cancelled:   "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status admits no further transitions.
func (s Status) IsFinal() bool {
	return s == Completed || s == Cancelled
}

// Approve transitions the status to Approved.
// Valid only from Pending.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, transitionError(s, "approve")
	}
	return Approved, nil
}

// StartProcessing transitions the status to Processing.
// Valid only from Approved; fired by the production-start rollup trigger.
func (s Status) StartProcessing() (Status, error) {
	if s != Approved {
		return 0, transitionError(s, "start processing")
	}
	return Processing, nil
}

// MarkReadyToShip transitions the status to ReadyToShip.
// Valid from Processing; ReadyToShip -> ReadyToShip is accepted as a no-op because
// the completion rollup may race against itself for the same order and the write
// is idempotent.
func (s Status) MarkReadyToShip() (Status, error) {
	if s != Processing && s != ReadyToShip {
		return 0, transitionError(s, "mark ready to ship")
	}
	return ReadyToShip, nil
}

// Ship transitions the status to Shipped.
// Valid only from ReadyToShip.
func (s Status) Ship() (Status, error) {
	if s != ReadyToShip {
		return 0, transitionError(s, "ship")
	}
	return Shipped, nil
}

// Complete transitions the status to Completed.
// Valid only from Shipped. Completed is a final state.
func (s Status) Complete() (Status, error) {
	if s != Shipped {
		return 0, transitionError(s, "complete")
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
// Valid from any non-final, non-shipped status.
func (s Status) Cancel() (Status, error) {
	if s == Shipped || s.IsFinal() {
		return 0, transitionError(s, "cancel")
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Cancelled, nil
}

func transitionError(s Status, action string) error {
	return errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s.String(), action))
}
