package scanner

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/station"
	"workshop/internal/pkg/errs"
)

// ErrAssignmentIsNotConstructed is returned when a ScannerAssignment was not
// created through NewScannerAssignment.
var ErrAssignmentIsNotConstructed = errors.New(
	"ScannerAssignment must be created via NewScannerAssignment")

// ScannerAssignment maps a scanner's three-character prefix to the worker it is
// issued to and the station it is homed at. Assignments are owned by an external
// provisioning workflow; this core only reads them.
//
// The scanner identifies the effective worker regardless of who is logged into
// the kiosk: scans are attributed to the assignment's worker, not the session.
type ScannerAssignment struct {
	// prefix is the three-character scanner prefix from the barcode
	prefix string

	// workerID is the worker the scanner is issued to
	workerID kernel.UUID

	// homeStation is the station the scanner is homed at
	homeStation station.Station

	// active reports whether the assignment is currently in service
	active bool

	// isConstructed ensures the assignment was created via the constructor
	isConstructed bool
}

// NewScannerAssignment creates a validated scanner assignment.
func NewScannerAssignment(
	prefix string, workerID kernel.UUID, homeStation station.Station, active bool,
) (ScannerAssignment, error) {
	a := ScannerAssignment{
		active:        active,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setPrefix(prefix),
		a.setWorkerID(workerID),
		a.setHomeStation(homeStation),
	); err != nil {
		return ScannerAssignment{}, err
	}

	return a, nil
}

// Validate ensures the assignment was properly constructed.
func (a ScannerAssignment) Validate() error {
	if !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// Prefix returns the scanner's three-character prefix.
func (a ScannerAssignment) Prefix() string {
	return a.prefix
}

// WorkerID returns the worker the scanner is issued to.
func (a ScannerAssignment) WorkerID() kernel.UUID {
	return a.workerID
}

// HomeStation returns the station the scanner is homed at.
func (a ScannerAssignment) HomeStation() station.Station {
	return a.homeStation
}

// IsActive reports whether the assignment is currently in service.
func (a ScannerAssignment) IsActive() bool {
	return a.active
}

func (a *ScannerAssignment) setPrefix(prefix string) error {
	if len(prefix) != 3 {
		return errs.NewValueIsInvalidError("scanner prefix must be exactly 3 characters")
	}
	a.prefix = prefix
	return nil
}

func (a *ScannerAssignment) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	a.workerID = workerID
	return nil
}

func (a *ScannerAssignment) setHomeStation(homeStation station.Station) error {
	if err := homeStation.Validate(); err != nil {
		return err
	}
	a.homeStation = homeStation
	return nil
}
