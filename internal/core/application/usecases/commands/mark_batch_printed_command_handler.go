package commands

import (
	"context"
)

// MarkBatchPrintedCommandHandler confirms printed batches. Confirmation is
// all-or-nothing: one missing or already printed entry rolls the batch back so
// the queue never half-reflects a print run.
type MarkBatchPrintedCommandHandler struct {
	uowFactory QueueUoWFactory
}

// NewMarkBatchPrintedCommandHandler creates a handler for batch confirmation.
func NewMarkBatchPrintedCommandHandler(uowFactory QueueUoWFactory) MarkBatchPrintedCommandHandler {
	return MarkBatchPrintedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks every entry of the command printed. Fails with
// ports.ErrQueueEntryNotFound or printqueue.ErrAlreadyPrinted without partial
// effect when the batch cannot be confirmed in full.
func (h MarkBatchPrintedCommandHandler) Handle(ctx context.Context, command MarkBatchPrintedCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.QueueRepository().MarkPrinted(ctx, command.EntryIDs(), command.PrintedBy()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
