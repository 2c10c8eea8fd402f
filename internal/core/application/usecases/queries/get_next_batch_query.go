package queries

import (
	"errors"

	"workshop/internal/pkg/guard"
)

var (
	ErrGetNextBatchQueryIsNotConstructed = errors.New(
		"GetNextBatchQuery must be created via NewGetNextBatchQuery constructor",
	)

	// ErrQueueIsEmpty is returned when there is nothing to print at all.
	ErrQueueIsEmpty = errors.New("print queue is empty")

	// ErrBatchNotReady is returned when fewer entries than the standard batch
	// size are queued and the caller did not allow a partial batch.
	ErrBatchNotReady = errors.New("not enough entries for a full batch")
)

// GetNextBatchQuery selects the entries of the next print batch: the oldest
// unprinted entries up to the standard batch size. Set allowPartial when the
// user confirmed printing an incomplete sheet.
type GetNextBatchQuery struct {
	allowPartial bool

	guard guard.ConstructorGuard
}

// NewGetNextBatchQuery creates a query for the next print batch.
func NewGetNextBatchQuery(allowPartial bool) GetNextBatchQuery {
	return GetNextBatchQuery{
		allowPartial: allowPartial,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetNextBatchQuery) Validate() error {
	return q.guard.Validate(ErrGetNextBatchQueryIsNotConstructed)
}

// AllowPartial reports whether an incomplete batch may be returned.
func (q GetNextBatchQuery) AllowPartial() bool {
	return q.allowPartial
}

// GetNextBatchQueryResponse carries the selected batch. IsPartial is set when
// the batch is smaller than the standard size.
type GetNextBatchQueryResponse struct {
	Entries   []GetPrintQueueQueryResponse
	IsPartial bool
}
