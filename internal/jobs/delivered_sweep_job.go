package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DeliveredSweepJob expires delivered parcels out of the working sets.
// Runs every second so a parcel leaves its set as soon as the retention
// window elapses, never before.
type DeliveredSweepJob struct {
	targets []WorkingSetTarget
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveredSweepJob creates a sweep job over the given working sets.
func NewDeliveredSweepJob(targets []WorkingSetTarget, logger *slog.Logger) *DeliveredSweepJob {
	return &DeliveredSweepJob{
		targets: targets,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivered_sweep_job"),
	}
}

// Start begins the sweep job to run every second.
func (j *DeliveredSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		now := time.Now()

		for _, target := range j.targets {
			target.Sweep(now)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivered sweep job started (running every second)")
	return nil
}

// Stop stops the sweep job.
func (j *DeliveredSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivered sweep job stopped")
}
