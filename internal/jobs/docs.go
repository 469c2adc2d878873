// Package jobs provides scheduled background tasks for the commerce system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. AbandonedOrderJob - Runs every minute to cancel pending orders that
// never received a payment within the configured age limit
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(ordersByStatusHandler, cancelOrderHandler, maxAge, logger)
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
// - A failed cancellation is logged and skipped so one stuck order does not
// block the rest of the sweep
// - Failed job starts will stop any already running jobs
package jobs
