// Package jobs provides scheduled background tasks for the fulfillment
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for carrier submission.
//
// # Available Jobs
//
// 1. AutoShipJob - Runs on a configurable schedule to submit every eligible
// order (confirmed, never submitted, not cash-on-delivery) to the carrier
// with the configured default courier.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(autoShipHandler, "*/15 * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses a standard five-field cron expression. Scheduled runs honor
// the seller's auto-ship switch and simply skip when it is off; a manual run
// through the API ignores the switch.
//
// # Error Handling
//
// - Missing carrier configuration is logged at info level and skipped
// - Per-order failures are contained inside the batch handler and logged as
//   counts; one bad order never stops the sweep
// - Unexpected errors are logged and the job waits for its next tick
package jobs
