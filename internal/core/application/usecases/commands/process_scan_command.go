package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/station"
	"workshop/internal/pkg/guard"
)

var (
	ErrProcessScanCommandIsNotConstructed = errors.New(
		"ProcessScanCommand must be created via NewProcessScanCommand constructor",
	)
	ErrActorIsRequired = errors.New(
		"either a scanner prefix or a session worker is required",
	)
	ErrScannerPrefixIsInvalid = errors.New(
		"scanner prefix must be exactly 3 characters",
	)
)

const scannerPrefixLength = 3

// ProcessScanCommand represents one barcode scan event to be applied to an item.
// The scan carries the kiosk's station and, when a registered scanner produced
// it, the scanner's prefix. The prefix overrides the kiosk session identity:
// scans are attributed to the scanner's assigned worker.
//
// Example:
//
//	cmd, err := NewProcessScanCommand(itemID, station.Cutting, "CB7", sessionWorkerID)
//	if err != nil {
//	    return fmt.Errorf("invalid scan data: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type ProcessScanCommand struct { //nolint:recvcheck //using for validation
	itemID          kernel.UUID
	station         station.Station
	scannerPrefix   string
	sessionWorkerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessScanCommand creates a validated scan command. scannerPrefix may be
// empty for kiosks without a registered scanner; sessionWorkerID is then
// required to attribute the scan.
func NewProcessScanCommand(
	itemID kernel.UUID, scannedAt station.Station, scannerPrefix string, sessionWorkerID kernel.UUID,
) (ProcessScanCommand, error) {
	cmd := ProcessScanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setStation(scannedAt),
		cmd.setActor(scannerPrefix, sessionWorkerID),
	); err != nil {
		return ProcessScanCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessScanCommand) Validate() error {
	return c.guard.Validate(ErrProcessScanCommandIsNotConstructed)
}

// ItemID returns the scanned item's identifier.
func (c ProcessScanCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Station returns the station the scan happened at.
func (c ProcessScanCommand) Station() station.Station {
	return c.station
}

// ScannerPrefix returns the registered scanner's prefix, or empty when the scan
// came from an unregistered kiosk scanner.
func (c ProcessScanCommand) ScannerPrefix() string {
	return c.scannerPrefix
}

// SessionWorkerID returns the kiosk session's worker. Zero-valued when a
// scanner prefix identifies the actor instead.
func (c ProcessScanCommand) SessionWorkerID() kernel.UUID {
	return c.sessionWorkerID
}

func (c *ProcessScanCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *ProcessScanCommand) setStation(scannedAt station.Station) error {
	if err := scannedAt.Validate(); err != nil {
		return err
	}

	c.station = scannedAt
	return nil
}

func (c *ProcessScanCommand) setActor(scannerPrefix string, sessionWorkerID kernel.UUID) error {
	if scannerPrefix == "" {
		if err := sessionWorkerID.Validate(); err != nil {
			return ErrActorIsRequired
		}
		c.sessionWorkerID = sessionWorkerID
		return nil
	}

	if len(scannerPrefix) != scannerPrefixLength {
		return ErrScannerPrefixIsInvalid
	}

	c.scannerPrefix = scannerPrefix
	c.sessionWorkerID = sessionWorkerID
	return nil
}
