package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// WorkingSetTarget is a working set maintained by the scheduled jobs.
type WorkingSetTarget interface {
	Refresh(ctx context.Context) error
	Sweep(now time.Time)
}

// WorkingSetRefreshJob periodically reloads working sets from the database.
// The reload is the implicit retry path: a set that emptied itself after a
// failed load comes back on the next successful tick.
type WorkingSetRefreshJob struct {
	targets []WorkingSetTarget
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewWorkingSetRefreshJob creates a refresh job over the given working sets.
func NewWorkingSetRefreshJob(targets []WorkingSetTarget, logger *slog.Logger) *WorkingSetRefreshJob {
	return &WorkingSetRefreshJob{
		targets: targets,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "working_set_refresh_job"),
	}
}

// Start begins the refresh job, running every 30 seconds.
func (j *WorkingSetRefreshJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		for _, target := range j.targets {
			if err := target.Refresh(ctx); err != nil {
				j.logger.ErrorContext(ctx, "Working set refresh failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Working set refresh job started (running every 30 seconds)")
	return nil
}

// Stop stops the refresh job.
func (j *WorkingSetRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Working set refresh job stopped")
}
