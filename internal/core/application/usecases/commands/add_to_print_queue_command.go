package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var (
	ErrAddToPrintQueueCommandIsNotConstructed = errors.New(
		"AddToPrintQueueCommand must be created via NewAddToPrintQueueCommand constructor",
	)
	ErrItemIDsAreRequired = errors.New("at least one item id is required")
)

// AddToPrintQueueCommand represents a request to queue sticker labels for one or
// more items. The queue is shared across all users; ordering is by time of
// addition, not by requester.
type AddToPrintQueueCommand struct { //nolint:recvcheck //using for validation
	itemIDs []kernel.UUID
	addedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddToPrintQueueCommand creates a validated queue-add command.
func NewAddToPrintQueueCommand(itemIDs []kernel.UUID, addedBy kernel.UUID) (AddToPrintQueueCommand, error) {
	cmd := AddToPrintQueueCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemIDs(itemIDs),
		cmd.setAddedBy(addedBy),
	); err != nil {
		return AddToPrintQueueCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToPrintQueueCommand) Validate() error {
	return c.guard.Validate(ErrAddToPrintQueueCommandIsNotConstructed)
}

// ItemIDs returns the items to queue, in request order.
func (c AddToPrintQueueCommand) ItemIDs() []kernel.UUID {
	return c.itemIDs
}

// AddedBy returns the worker who requested the queuing.
func (c AddToPrintQueueCommand) AddedBy() kernel.UUID {
	return c.addedBy
}

func (c *AddToPrintQueueCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return ErrItemIDsAreRequired
	}
	for _, id := range itemIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.itemIDs = itemIDs
	return nil
}

func (c *AddToPrintQueueCommand) setAddedBy(addedBy kernel.UUID) error {
	if err := addedBy.Validate(); err != nil {
		return err
	}

	c.addedBy = addedBy
	return nil
}
