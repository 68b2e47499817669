// Package jobs provides scheduled background tasks for the donation
// coordination system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. PickupExpiryJob - Runs every minute to release pickup claims whose
// courier never collected the food within the expiry window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(releaseExpiredHandler, logger)
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
// An empty sweep is a successful no-op; only infrastructure failures are
// logged. Failed job starts will stop any already running jobs.
package jobs
