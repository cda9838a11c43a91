// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to keep the in-memory working sets aligned with the database.
//
// # Available Jobs
//
// 1. WorkingSetRefreshJob - Runs every 30 seconds to reload registered working sets from the database
// 2. DeliveredSweepJob - Runs every second to expire delivered parcels whose retention window has elapsed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the working sets to maintain
//	jobManager := jobs.NewJobManager([]jobs.WorkingSetTarget{dispatcherSet, customerSets}, logger)
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
// The sweep job runs every second so delivered parcels leave their working
// set as soon as the retention window elapses. The refresh job runs every 30
// seconds; between refreshes, remote row updates keep the sets current.
//
// # Error Handling
//
// - Refresh failures are logged; the working set resolves to empty and the next tick retries
// - Failed job starts will stop any already running jobs
package jobs
