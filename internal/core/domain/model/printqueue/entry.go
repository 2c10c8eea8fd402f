package printqueue

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
)

var (
	// ErrEntryIsNotConstructed is returned when a QueueEntry was not created
	// through NewQueueEntry or RestoreQueueEntry.
	ErrEntryIsNotConstructed = errors.New(
		"QueueEntry must be created via NewQueueEntry or RestoreQueueEntry")

	// ErrAlreadyPrinted is returned when marking an entry printed a second time.
	ErrAlreadyPrinted = errors.New("queue entry is already printed")
)

// QueueEntry is one item's place in the shared print queue. The queue is global:
// every user sees the same entries in the same order, and batches are cut from the
// oldest unprinted entries first.
//
// Invariant: at most one unprinted entry exists per item. The storage layer
// enforces this with a partial unique constraint; concurrent adds for the same
// item therefore yield exactly one success.
type QueueEntry struct {
	// id is the unique identifier for the entry
	id kernel.UUID

	// itemID references the production item whose paperwork is queued
	itemID kernel.UUID

	// addedAt is when the entry joined the queue; FIFO ordering key
	addedAt time.Time

	// addedBy is the worker who enqueued the item
	addedBy kernel.UUID

	// printed is set when the entry went out in a committed batch
	printed bool

	// printedAt is when the batch containing this entry was printed
	printedAt *time.Time

	// printedBy is the worker who printed the batch
	printedBy *kernel.UUID

	// isConstructed ensures the entry was created via a constructor
	isConstructed bool
}

// NewQueueEntry creates an unprinted queue entry for the given item, added now by
// the given worker.
func NewQueueEntry(id, itemID, addedBy kernel.UUID, now time.Time) (*QueueEntry, error) {
	entry := &QueueEntry{
		addedAt:       now,
		isConstructed: true,
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setItemID(itemID),
		entry.setAddedBy(addedBy),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// RestoreQueueEntry reconstructs a queue entry from persistence.
func RestoreQueueEntry(
	id, itemID, addedBy kernel.UUID,
	addedAt time.Time,
	printed bool,
	printedAt *time.Time,
	printedBy *kernel.UUID,
) (*QueueEntry, error) {
	entry, err := NewQueueEntry(id, itemID, addedBy, addedAt)
	if err != nil {
		return nil, err
	}

	if printedBy != nil {
		if err = printedBy.Validate(); err != nil {
			return nil, err
		}
	}

	entry.printed = printed
	entry.printedAt = printedAt
	entry.printedBy = printedBy
	return entry, nil
}

// Validate ensures the entry was properly constructed.
func (e *QueueEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *QueueEntry) ID() kernel.UUID {
	return e.id
}

// ItemID returns the identifier of the queued production item.
func (e *QueueEntry) ItemID() kernel.UUID {
	return e.itemID
}

// AddedAt returns when the entry joined the queue.
func (e *QueueEntry) AddedAt() time.Time {
	return e.addedAt
}

// AddedBy returns the worker who enqueued the item.
func (e *QueueEntry) AddedBy() kernel.UUID {
	return e.addedBy
}

// IsPrinted reports whether the entry went out in a committed batch.
func (e *QueueEntry) IsPrinted() bool {
	return e.printed
}

// PrintedAt returns when the entry was printed, or nil.
func (e *QueueEntry) PrintedAt() *time.Time {
	return e.printedAt
}

// PrintedBy returns who printed the entry, or nil.
func (e *QueueEntry) PrintedBy() *kernel.UUID {
	return e.printedBy
}

// MarkPrinted flags the entry as printed now by the given worker.
// Returns ErrAlreadyPrinted when the entry was already printed.
func (e *QueueEntry) MarkPrinted(now time.Time, actor kernel.UUID) error {
	if e.printed {
		return ErrAlreadyPrinted
	}
	if err := actor.Validate(); err != nil {
		return err
	}

	at := now
	e.printed = true
	e.printedAt = &at
	e.printedBy = &actor
	return nil
}

func (e *QueueEntry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *QueueEntry) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	e.itemID = itemID
	return nil
}

func (e *QueueEntry) setAddedBy(addedBy kernel.UUID) error {
	if err := addedBy.Validate(); err != nil {
		return err
	}
	e.addedBy = addedBy
	return nil
}
