// Package jobs provides scheduled background tasks for the delivery service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for delivery monitoring.
//
// # Available Jobs
//
// 1. DeliveryMonitoringJob - Runs every minute to flag active deliveries that
// have gone silent past the staleness threshold, raising warning alerts.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(repository, monitor, staleAfter, logger)
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
// - Sweep failures are logged and retried on the next tick
// - Alerting is fire-and-forget; a failing notification sink never stops the sweep
// - Failed job starts will stop any already running jobs
package jobs
