package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/station"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrGetStaleWorkLogsQueryIsNotConstructed = errors.New(
	"GetStaleWorkLogsQuery must be created via NewGetStaleWorkLogsQuery constructor",
)

// GetStaleWorkLogsQuery finds open processing log entries older than a
// threshold. An entry stays open when a worker forgot the completion scan, so
// long-open entries usually mean a missed scan.
type GetStaleWorkLogsQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStaleWorkLogsQuery creates a query for open entries older than the
// given duration.
func NewGetStaleWorkLogsQuery(olderThan time.Duration) (GetStaleWorkLogsQuery, error) {
	if olderThan <= 0 {
		return GetStaleWorkLogsQuery{}, errs.NewValueIsRequiredError("olderThan")
	}

	return GetStaleWorkLogsQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleWorkLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleWorkLogsQueryIsNotConstructed)
}

// OlderThan returns the staleness threshold.
func (q GetStaleWorkLogsQuery) OlderThan() time.Duration {
	return q.olderThan
}

// GetStaleWorkLogsQueryResponse represents one open entry past the threshold.
type GetStaleWorkLogsQueryResponse struct {
	EntryID       kernel.UUID
	ItemID        kernel.UUID
	ItemReference string
	Station       station.Station
	WorkerID      kernel.UUID
	StartedAt     time.Time
}
