package jobs

import (
	"context"
	"log/slog"
	"time"

	"workshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// staleThreshold is how long a processing log entry may stay open before it is
// reported as a likely missed scan.
const staleThreshold = 8 * time.Hour

// StaleWorkLogJob looks for processing log entries that stayed open far longer
// than any real processing step takes. Runs every ten minutes and only warns;
// closing the entry is an operator decision.
type StaleWorkLogJob struct {
	handler queries.GetStaleWorkLogsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleWorkLogJob creates a job that reports long-open work log entries.
func NewStaleWorkLogJob(handler queries.GetStaleWorkLogsQueryHandler, logger *slog.Logger) *StaleWorkLogJob {
	return &StaleWorkLogJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_worklog_job"),
	}
}

// Start begins the stale work log watch to run every ten minutes.
func (j *StaleWorkLogJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetStaleWorkLogsQuery(staleThreshold)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale work log query construction failed", "error", err)
			return
		}

		entries, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale work log check failed", "error", err)
			return
		}

		for _, entry := range entries {
			j.logger.WarnContext(ctx, "Work log entry open past threshold",
				"entry_id", entry.EntryID.String(),
				"item_reference", entry.ItemReference,
				"station", entry.Station.String(),
				"worker_id", entry.WorkerID.String(),
				"started_at", entry.StartedAt)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale work log watch started (running every 10 minutes)")
	return nil
}

// Stop stops the stale work log watch.
func (j *StaleWorkLogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale work log watch stopped")
}
