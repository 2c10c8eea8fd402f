package queries

import (
	"errors"
	"time"

	"workshop/internal/pkg/guard"
)

var ErrGetQueueStatusQueryIsNotConstructed = errors.New(
	"GetQueueStatusQuery must be created via NewGetQueueStatusQuery constructor",
)

// GetQueueStatusQuery retrieves queue counters for the queue screen and the
// monitoring job.
type GetQueueStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetQueueStatusQuery creates a queue status query.
func NewGetQueueStatusQuery() GetQueueStatusQuery {
	return GetQueueStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetQueueStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetQueueStatusQueryIsNotConstructed)
}

// GetQueueStatusQueryResponse summarizes the queue. CanPrintFullBatch is derived
// from the standard batch size, so UI buttons and the monitor job share one rule.
type GetQueueStatusQueryResponse struct {
	UnprintedCount    int
	PrintedCount      int
	OldestUnprintedAt *time.Time
	StandardBatchSize int
	CanPrintFullBatch bool
}
