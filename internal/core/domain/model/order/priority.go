package order

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Priority is the scheduling tag attached to an order. It does not affect the
// production workflow itself; it is surfaced to the floor so rush orders can be
// picked up first.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityNormal is the default priority for new orders.
	PriorityNormal

	// PriorityRush marks orders that should jump the line.
	PriorityRush
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "Unknown",
		PriorityNormal:  "Normal",
		PriorityRush:    "Rush",
	}
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	if p == PriorityUnknown {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid",
			fmt.Errorf("%d is not a valid priority", int(p)))
	}
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid",
			fmt.Errorf("%d is not a valid priority", int(p)))
	}
	return nil
}

// String returns the human-readable name of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
