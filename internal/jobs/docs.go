// Package jobs provides scheduled background tasks for the shop floor system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path cannot guarantee.
//
// # Available Jobs
//
// 1. ShiftRecloseJob - Runs every minute to find closed shifts whose time
// accounting never completed and enqueue their closing chain again
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(uowFactory, scheduler, pipeline, logger)
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
// The reclose job uses the cron expression "0 * * * * *", firing at the top
// of every minute. Stuck shifts are rare, so a minute of repair latency is
// acceptable while keeping the poll load negligible.
package jobs
