package jobs

import (
	"fmt"
	"log/slog"

	"workshop/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	printQueueMonitorJob *PrintQueueMonitorJob
	staleWorkLogJob      *StaleWorkLogJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	queueStatusHandler queries.GetQueueStatusQueryHandler,
	staleWorkLogsHandler queries.GetStaleWorkLogsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		printQueueMonitorJob: NewPrintQueueMonitorJob(queueStatusHandler, logger),
		staleWorkLogJob:      NewStaleWorkLogJob(staleWorkLogsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.printQueueMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start print queue monitor: %w", err)
	}

	if err := jm.staleWorkLogJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.printQueueMonitorJob.Stop()
		return fmt.Errorf("failed to start stale work log watch: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleWorkLogJob.Stop()
	jm.printQueueMonitorJob.Stop()
}
