package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	refreshJob *WorkingSetRefreshJob
	sweepJob   *DeliveredSweepJob
}

// NewJobManager creates a job manager maintaining the given working sets.
func NewJobManager(targets []WorkingSetTarget, logger *slog.Logger) *JobManager {
	return &JobManager{
		refreshJob: NewWorkingSetRefreshJob(targets, logger),
		sweepJob:   NewDeliveredSweepJob(targets, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.refreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start working set refresh job: %w", err)
	}

	if err := jm.sweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.refreshJob.Stop()
		return fmt.Errorf("failed to start delivered sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.refreshJob.Stop()
	jm.sweepJob.Stop()
}
