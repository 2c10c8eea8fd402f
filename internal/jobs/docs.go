// Package jobs provides scheduled background tasks for the production tracker.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operational checks around the shop floor workflow.
//
// # Available Jobs
//
// 1. PrintQueueMonitorJob - Runs every minute and logs when a full print batch is waiting
// 2. StaleWorkLogJob - Runs every 10 minutes and warns about work log entries left open (missed scans)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(queueStatusHandler, staleWorkLogsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs are observers: they only read and log. Failures are logged and the
// next tick retries; a failed job start stops any already running jobs.
package jobs
