package job

import (
	"context"
	"time"

	"cryptobuzz-srv/internal/alert"
	"cryptobuzz-srv/pkg/log"
	"cryptobuzz-srv/pkg/scheduler"
)

type engineJob struct {
	scheduler.Job
	uc alert.UseCase
}

// New returns the alert engine loop. Ticks never overlap; a failed tick is retried on the next one.
func New(l log.Logger, uc alert.UseCase, interval time.Duration) (scheduler.Job, error) {
	j, err := scheduler.New(l, scheduler.Config{
		Name:     "alert-engine",
		Interval: interval,
	}, func(ctx context.Context) error {
		_, err := uc.RunCheck(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return engineJob{Job: j, uc: uc}, nil
}

// Shutdown stops ticking, then drains the notifications the last ticks queued.
func (j engineJob) Shutdown(ctx context.Context) error {
	if err := j.Job.Shutdown(ctx); err != nil {
		return err
	}
	return j.uc.Shutdown(ctx)
}
