package jobs

import (
	"context"
	"log/slog"

	"workshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PrintQueueMonitorJob watches the shared print queue. Runs every minute and
// logs when a full batch is waiting so the office knows paperwork piled up.
type PrintQueueMonitorJob struct {
	handler queries.GetQueueStatusQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPrintQueueMonitorJob creates a job that reports print queue readiness.
func NewPrintQueueMonitorJob(handler queries.GetQueueStatusQueryHandler, logger *slog.Logger) *PrintQueueMonitorJob {
	return &PrintQueueMonitorJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "print_queue_monitor_job"),
	}
}

// Start begins the queue monitor to run every minute.
func (j *PrintQueueMonitorJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		status, err := j.handler.Handle(ctx, queries.NewGetQueueStatusQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Print queue monitor failed", "error", err)
			return
		}

		if status.CanPrintFullBatch {
			j.logger.InfoContext(ctx, "Full print batch waiting",
				"unprinted", status.UnprintedCount,
				"batch_size", status.StandardBatchSize,
				"oldest_added_at", status.OldestUnprintedAt)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Print queue monitor started (running every minute)")
	return nil
}

// Stop stops the queue monitor.
func (j *PrintQueueMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Print queue monitor stopped")
}
