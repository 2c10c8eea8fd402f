package item

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Status represents the position of a production item in the fixed workflow.
// The declaration order of the constants IS the workflow order: a successful
// transition always moves an item to a status with a strictly greater index,
// never backwards and never in place.
//
// Workflow:
//
//	NotStarted → Cutting → Sewing → FoamCutting → Stuffing → Packaging → Finished → Ready
//
// Ready is terminal; only the Office station can produce it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// NotStarted is the initial status before the Office start-of-production scan.
	NotStarted

	// Cutting means the item is in the fabric cutting stage.
	Cutting

	// Sewing means the item is in the sewing stage.
	Sewing

	// FoamCutting means the item is in the foam cutting stage.
	FoamCutting

	// Stuffing means the item is in the stuffing stage.
	Stuffing

	// Packaging means the item is in the packaging stage.
	Packaging

	// Finished means production is complete and the item awaits Office finalization.
	Finished

	// Ready means the item was finalized by the Office. Terminal status.
	Ready
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		NotStarted:  "NotStarted",
		Cutting:     "Cutting",
		Sewing:      "Sewing",
		FoamCutting: "FoamCutting",
		Stuffing:    "Stuffing",
		Packaging:   "Packaging",
		Finished:    "Finished",
		Ready:       "Ready",
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

// Index returns the workflow-order index of the status. A transition is a forward
// move exactly when the target's index is strictly greater than the current one.
func (s Status) Index() int {
	return int(s)
}

// After reports whether s is strictly further along the workflow than other.
func (s Status) After(other Status) bool {
	return s.Index() > other.Index()
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Ready
}
