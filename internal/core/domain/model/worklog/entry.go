package worklog

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/station"
)

var (
	// ErrEntryIsNotConstructed is returned when a ProcessingLogEntry was not created
	// through one of the constructors.
	ErrEntryIsNotConstructed = errors.New(
		"ProcessingLogEntry must be created via NewProcessingLogEntry, NewCompletionLogEntry, or RestoreProcessingLogEntry")

	// ErrEntryAlreadyClosed is returned when closing an entry that already has an
	// end time.
	ErrEntryAlreadyClosed = errors.New("processing log entry is already closed")
)

// ProcessingLogEntry records one unit of station work on a production item.
//
// Workers scan when they finish, not when they start, so an entry is opened at the
// moment a scan arrives (start of the next unit of work) and closed lazily by the
// following scan for the same item, wherever that scan happens. The duration is
// the second-granularity difference between start and end.
//
// Invariant: at most one entry per item has a nil end time at any instant. This is
// enforced by the storage layer (partial unique index) together with the per-item
// transaction in the scan handler.
type ProcessingLogEntry struct {
	// id is the unique identifier for the entry
	id kernel.UUID

	// itemID references the production item the work was performed on
	itemID kernel.UUID

	// station is where the work happened
	station station.Station

	// workerID is the worker who performed the work
	workerID kernel.UUID

	// startedAt is when the unit of work began
	startedAt time.Time

	// endedAt is when the unit of work finished; nil while the entry is open
	endedAt *time.Time

	// durationSeconds is endedAt-startedAt in whole seconds; nil while open
	durationSeconds *int64

	// note is free-form bookkeeping text appended on close
	note string

	// isConstructed ensures the entry was created via a constructor
	isConstructed bool
}

// NewProcessingLogEntry opens a new entry for the given item at the given station,
// starting now with no end time.
func NewProcessingLogEntry(
	id, itemID, workerID kernel.UUID, at station.Station, now time.Time,
) (*ProcessingLogEntry, error) {
	entry := &ProcessingLogEntry{
		startedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setItemID(itemID),
		entry.setWorkerID(workerID),
		entry.setStation(at),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// NewCompletionLogEntry creates a zero-duration entry (start = end = now) recorded
// when an item reaches its terminal status. It exists purely for audit and
// reporting continuity; no open entry remains after finalization.
func NewCompletionLogEntry(
	id, itemID, workerID kernel.UUID, at station.Station, now time.Time, note string,
) (*ProcessingLogEntry, error) {
	entry, err := NewProcessingLogEntry(id, itemID, workerID, at, now)
	if err != nil {
		return nil, err
	}

	end := now
	var zero int64
	entry.endedAt = &end
	entry.durationSeconds = &zero
	entry.note = note
	return entry, nil
}

// RestoreProcessingLogEntry reconstructs an entry from persistence.
func RestoreProcessingLogEntry(
	id, itemID, workerID kernel.UUID,
	at station.Station,
	startedAt time.Time,
	endedAt *time.Time,
	durationSeconds *int64,
	note string,
) (*ProcessingLogEntry, error) {
	entry, err := NewProcessingLogEntry(id, itemID, workerID, at, startedAt)
	if err != nil {
		return nil, err
	}

	entry.endedAt = endedAt
	entry.durationSeconds = durationSeconds
	entry.note = note
	return entry, nil
}

// Validate ensures the entry was properly constructed.
func (e *ProcessingLogEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *ProcessingLogEntry) ID() kernel.UUID {
	return e.id
}

// ItemID returns the identifier of the production item.
func (e *ProcessingLogEntry) ItemID() kernel.UUID {
	return e.itemID
}

// Station returns where the work happened.
func (e *ProcessingLogEntry) Station() station.Station {
	return e.station
}

// WorkerID returns who performed the work.
func (e *ProcessingLogEntry) WorkerID() kernel.UUID {
	return e.workerID
}

// StartedAt returns when the unit of work began.
func (e *ProcessingLogEntry) StartedAt() time.Time {
	return e.startedAt
}

// EndedAt returns when the unit of work finished, or nil while open.
func (e *ProcessingLogEntry) EndedAt() *time.Time {
	return e.endedAt
}

// DurationSeconds returns the recorded duration in seconds, or nil while open.
func (e *ProcessingLogEntry) DurationSeconds() *int64 {
	return e.durationSeconds
}

// Note returns the bookkeeping note.
func (e *ProcessingLogEntry) Note() string {
	return e.note
}

// IsOpen reports whether the entry has no end time yet.
func (e *ProcessingLogEntry) IsOpen() bool {
	return e.endedAt == nil
}

// Close finishes the unit of work: sets the end time, computes the duration in
// whole seconds, and appends the note. Returns ErrEntryAlreadyClosed when the
// entry already has an end time.
func (e *ProcessingLogEntry) Close(now time.Time, note string) error {
	if e.endedAt != nil {
		return ErrEntryAlreadyClosed
	}

	end := now
	duration := int64(now.Sub(e.startedAt).Seconds())
	e.endedAt = &end
	e.durationSeconds = &duration
	e.note = note
	return nil
}

func (e *ProcessingLogEntry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *ProcessingLogEntry) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	e.itemID = itemID
	return nil
}

func (e *ProcessingLogEntry) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	e.workerID = workerID
	return nil
}

func (e *ProcessingLogEntry) setStation(at station.Station) error {
	if err := at.Validate(); err != nil {
		return err
	}
	e.station = at
	return nil
}
