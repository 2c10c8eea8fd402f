package audit

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/item"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/station"
)

// ErrRecordIsNotConstructed is returned when a ScanRecord was not created
// through NewScanRecord.
var ErrRecordIsNotConstructed = errors.New("ScanRecord must be created via NewScanRecord")

// ScanRecord is an immutable audit trail entry for one accepted scan. Records
// are append-only; failures to persist them never fail the scan itself.
type ScanRecord struct {
	id         kernel.UUID
	itemID     kernel.UUID
	station    station.Station
	workerID   kernel.UUID
	fromStatus item.Status
	toStatus   item.Status
	occurredAt time.Time

	isConstructed bool
}

// NewScanRecord creates an audit record for an accepted scan.
func NewScanRecord(
	itemID kernel.UUID, scannedAt station.Station, workerID kernel.UUID,
	fromStatus, toStatus item.Status, occurredAt time.Time,
) (ScanRecord, error) {
	if err := errors.Join(
		itemID.Validate(),
		scannedAt.Validate(),
		workerID.Validate(),
		fromStatus.Validate(),
		toStatus.Validate(),
	); err != nil {
		return ScanRecord{}, err
	}

	return ScanRecord{
		id:            kernel.NewUUID(),
		itemID:        itemID,
		station:       scannedAt,
		workerID:      workerID,
		fromStatus:    fromStatus,
		toStatus:      toStatus,
		occurredAt:    occurredAt,
		isConstructed: true,
	}, nil
}

// RestoreScanRecord reconstructs a record from persistence.
func RestoreScanRecord(
	id, itemID kernel.UUID, scannedAt station.Station, workerID kernel.UUID,
	fromStatus, toStatus item.Status, occurredAt time.Time,
) (ScanRecord, error) {
	if err := errors.Join(
		id.Validate(),
		itemID.Validate(),
		scannedAt.Validate(),
		workerID.Validate(),
		fromStatus.Validate(),
		toStatus.Validate(),
	); err != nil {
		return ScanRecord{}, err
	}

	return ScanRecord{
		id:            id,
		itemID:        itemID,
		station:       scannedAt,
		workerID:      workerID,
		fromStatus:    fromStatus,
		toStatus:      toStatus,
		occurredAt:    occurredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the record was properly constructed.
func (r ScanRecord) Validate() error {
	if !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r ScanRecord) ID() kernel.UUID {
	return r.id
}

// ItemID returns the scanned item's identifier.
func (r ScanRecord) ItemID() kernel.UUID {
	return r.itemID
}

// Station returns the station the scan happened at.
func (r ScanRecord) Station() station.Station {
	return r.station
}

// WorkerID returns the worker the scan was attributed to.
func (r ScanRecord) WorkerID() kernel.UUID {
	return r.workerID
}

// FromStatus returns the item's status before the scan.
func (r ScanRecord) FromStatus() item.Status {
	return r.fromStatus
}

// ToStatus returns the item's status after the scan.
func (r ScanRecord) ToStatus() item.Status {
	return r.toStatus
}

// OccurredAt returns when the scan was accepted.
func (r ScanRecord) OccurredAt() time.Time {
	return r.occurredAt
}
