package ports

import (
	"context"
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/printqueue"
)

// ErrAlreadyQueued is the sentinel for adding an item that already has an
// unprinted queue entry. The storage layer's unique constraint is the source of
// truth, so concurrent adds for one item produce exactly one winner.
var ErrAlreadyQueued = errors.New("item is already queued")

// ErrQueueEntryNotFound is returned when a referenced queue entry does not exist.
var ErrQueueEntryNotFound = errors.New("queue entry not found")

// AlreadyQueuedError identifies which item of a multi-item add was rejected.
type AlreadyQueuedError struct {
	ItemID kernel.UUID
}

func (e *AlreadyQueuedError) Error() string {
	return fmt.Sprintf("%s: item %s", ErrAlreadyQueued, e.ItemID)
}

func (e *AlreadyQueuedError) Unwrap() error {
	return ErrAlreadyQueued
}

// QueueRepository defines the persistence contract for the shared print queue.
type QueueRepository interface {
	// Add persists a new queue entry. Returns an error unwrapping to
	// ErrAlreadyQueued when the item already has an unprinted entry.
	Add(ctx context.Context, entry *printqueue.QueueEntry) error

	// GetAllUnprinted retrieves unprinted entries oldest-first. A limit of 0
	// returns all of them.
	GetAllUnprinted(ctx context.Context, limit int) ([]*printqueue.QueueEntry, error)

	// CountUnprinted returns the number of unprinted entries.
	CountUnprinted(ctx context.Context) (int, error)

	// GetByIDs retrieves entries by identifier, printed or not. Missing
	// identifiers surface as ErrQueueEntryNotFound.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*printqueue.QueueEntry, error)

	// MarkPrinted flips the given entries to printed in one statement. It fails
	// without partial effect when any entry is missing (ErrQueueEntryNotFound)
	// or already printed (printqueue.ErrAlreadyPrinted).
	MarkPrinted(ctx context.Context, ids []kernel.UUID, printedBy kernel.UUID) error
}
