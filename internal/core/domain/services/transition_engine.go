package services

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/item"
	"workshop/internal/core/domain/model/station"
)

// ErrInvalidTransition is the sentinel for every scan the engine rejects.
// Use errors.Is against it; the concrete InvalidTransitionError carries the
// item's current status and the attempted station so the UI can explain why.
var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError describes a rejected scan.
type InvalidTransitionError struct {
	Current item.Status
	Station station.Station
	Reason  string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s scan on item in status %s: %s",
		ErrInvalidTransition, e.Station, e.Current, e.Reason)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func rejected(current item.Status, at station.Station, reason string) error {
	return &InvalidTransitionError{Current: current, Station: at, Reason: reason}
}

// TransitionEngine computes the next production status for a scan event. It is a
// stateless domain service: the decision depends only on the item's current
// status, the scanning station, and (when known) the last station that scanned
// the item.
//
// The engine is intentionally permissive forward and strict backward: operators
// may correct a missed scan by re-scanning further down the line, but an item can
// never be scanned back to an earlier status.
//
// Rules, in priority order:
//  1. NotStarted items can only be started by the Office, always into Cutting.
//  2. An Office scan on a started item finalizes it to Ready, except that the
//     Office must not finalize its own start-of-production scan: an item still in
//     Cutting whose last scanner was the Office (or whose scan history is unknown,
//     on legacy data) is rejected.
//  3. Any other station advances the item to that station's designated completion
//     target, provided the target is strictly further along the workflow than the
//     current status. Skipping stations forward is allowed.
type TransitionEngine struct{}

// NewTransitionEngine creates a new TransitionEngine instance.
func NewTransitionEngine() TransitionEngine {
	return TransitionEngine{}
}

// getTransitionTargets returns each line station's designated completion target:
// the status an item enters when that station finishes its work. The Office is
// absent because its outcome depends on the item's current status (rules 1 and 2).
func getTransitionTargets() map[station.Station]item.Status {
	//nolint:exhaustive // Office is handled by dedicated rules, not a fixed target
	return map[station.Station]item.Status{
		station.Cutting:     item.Sewing,
		station.Sewing:      item.FoamCutting,
		station.FoamCutting: item.Stuffing,
		station.Stuffing:    item.Packaging,
		station.Packaging:   item.Finished,
	}
}

// NextStatus computes the status an item moves to when scanned at the given
// station. lastStation is the station that performed the previous scan for the
// item; pass nil when no scan history is available (legacy data).
//
// Returns an error unwrapping to ErrInvalidTransition when the scan must be
// rejected; the returned error carries the current status and attempted station.
func (e TransitionEngine) NextStatus(
	current item.Status, scanning station.Station, lastStation *station.Station,
) (item.Status, error) {
	if err := current.Validate(); err != nil {
		return item.Unknown, err
	}
	if err := scanning.Validate(); err != nil {
		return item.Unknown, err
	}

	// Rule 1: only the Office starts production.
	if current == item.NotStarted {
		if scanning != station.Office {
			return item.Unknown, rejected(current, scanning,
				"only the Office station can start production")
		}
		return item.Cutting, nil
	}

	// Rule 2: Office finalization with the double self-scan guard.
	if scanning == station.Office {
		if current == item.Cutting {
			if lastStation == nil {
				// Legacy items with no scan history: the Cutting status alone cannot
				// prove an intervening station, so finalization is refused.
				return item.Unknown, rejected(current, scanning,
					"cannot finalize an item in Cutting without known scan history")
			}
			if *lastStation == station.Office {
				return item.Unknown, rejected(current, scanning,
					"the Office cannot finalize immediately after its own start scan")
			}
		}
		return item.Ready, nil
	}

	// Rule 3: line stations advance to their designated target, forward only.
	target, ok := getTransitionTargets()[scanning]
	if !ok {
		return item.Unknown, rejected(current, scanning, "station has no designated transition")
	}
	if !target.After(current) {
		return item.Unknown, rejected(current, scanning,
			fmt.Sprintf("target status %s is not further along the workflow", target))
	}

	return target, nil
}
