// Package queries contains read-only operations for the production tracking system.
// Implements the Query side of the CQRS architecture: handlers read directly from
// the database with raw SQL, bypassing domain aggregates for efficiency.
package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetPrintQueueQueryIsNotConstructed = errors.New(
	"GetPrintQueueQuery must be created via NewGetPrintQueueQuery constructor",
)

// GetPrintQueueQuery retrieves the shared print queue, oldest first. The queue
// is global: every user sees the same entries regardless of who queued them.
// Printed entries are not part of the queue view; they stay in storage as the
// record of past print runs and are reachable through GetQueueStatusQuery's
// printed count.
type GetPrintQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPrintQueueQuery creates a query for the current print queue.
func NewGetPrintQueueQuery() GetPrintQueueQuery {
	return GetPrintQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPrintQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetPrintQueueQueryIsNotConstructed)
}

// GetPrintQueueQueryResponse represents one unprinted queue entry enriched with
// the item and order context the queue screen shows.
type GetPrintQueueQueryResponse struct {
	EntryID       kernel.UUID
	ItemID        kernel.UUID
	ItemReference string
	OrderNumber   string
	AddedAt       time.Time
	AddedBy       kernel.UUID
}
