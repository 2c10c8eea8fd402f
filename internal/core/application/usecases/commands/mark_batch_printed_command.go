package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var (
	ErrMarkBatchPrintedCommandIsNotConstructed = errors.New(
		"MarkBatchPrintedCommand must be created via NewMarkBatchPrintedCommand constructor",
	)
	ErrEntryIDsAreRequired = errors.New("at least one queue entry id is required")
	ErrDuplicateEntryIDs   = errors.New("queue entry ids must be unique")
)

// MarkBatchPrintedCommand confirms that a batch of sticker labels left the
// printer. The whole batch is confirmed atomically.
type MarkBatchPrintedCommand struct { //nolint:recvcheck //using for validation
	entryIDs  []kernel.UUID
	printedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkBatchPrintedCommand creates a validated batch confirmation command.
func NewMarkBatchPrintedCommand(entryIDs []kernel.UUID, printedBy kernel.UUID) (MarkBatchPrintedCommand, error) {
	cmd := MarkBatchPrintedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEntryIDs(entryIDs),
		cmd.setPrintedBy(printedBy),
	); err != nil {
		return MarkBatchPrintedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkBatchPrintedCommand) Validate() error {
	return c.guard.Validate(ErrMarkBatchPrintedCommandIsNotConstructed)
}

// EntryIDs returns the queue entries to confirm.
func (c MarkBatchPrintedCommand) EntryIDs() []kernel.UUID {
	return c.entryIDs
}

// PrintedBy returns the worker confirming the batch.
func (c MarkBatchPrintedCommand) PrintedBy() kernel.UUID {
	return c.printedBy
}

func (c *MarkBatchPrintedCommand) setEntryIDs(entryIDs []kernel.UUID) error {
	if len(entryIDs) == 0 {
		return ErrEntryIDsAreRequired
	}

	// A repeated id would update one row but expect two, and the shortfall
	// reads as a missing entry. Rejected here where the cause is visible.
	seen := make(map[kernel.UUID]struct{}, len(entryIDs))
	for _, id := range entryIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id]; ok {
			return ErrDuplicateEntryIDs
		}
		seen[id] = struct{}{}
	}

	c.entryIDs = entryIDs
	return nil
}

func (c *MarkBatchPrintedCommand) setPrintedBy(printedBy kernel.UUID) error {
	if err := printedBy.Validate(); err != nil {
		return err
	}

	c.printedBy = printedBy
	return nil
}
