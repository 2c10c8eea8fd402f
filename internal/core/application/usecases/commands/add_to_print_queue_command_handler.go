package commands

import (
	"context"
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/printqueue"
	"workshop/internal/core/ports"
)

// AddToPrintQueueCommandHandler queues sticker labels for printing. All adds of
// one command share a transaction: either every item gets its entry or none do.
// The storage layer's unique constraint on unprinted entries is the arbiter for
// concurrent adds of the same item, so exactly one of two racing requests wins.
type AddToPrintQueueCommandHandler struct {
	uowFactory QueueUoWFactory
}

// NewAddToPrintQueueCommandHandler creates a handler for queue-add operations.
func NewAddToPrintQueueCommandHandler(uowFactory QueueUoWFactory) AddToPrintQueueCommandHandler {
	return AddToPrintQueueCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle queues every item of the command. The first item that already has an
// unprinted entry aborts the whole command with an AlreadyQueuedError naming it;
// the caller retries with the remaining items.
func (h AddToPrintQueueCommandHandler) Handle(ctx context.Context, command AddToPrintQueueCommand) error {
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

	queueRepo := uow.QueueRepository()
	now := time.Now().UTC()

	for _, itemID := range command.ItemIDs() {
		entry, err := printqueue.NewQueueEntry(kernel.NewUUID(), itemID, command.AddedBy(), now)
		if err != nil {
			return err
		}

		if err = queueRepo.Add(ctx, entry); err != nil {
			if errors.Is(err, ports.ErrAlreadyQueued) {
				return &ports.AlreadyQueuedError{ItemID: itemID}
			}
			return err
		}
	}

	return uow.Commit(ctx)
}
