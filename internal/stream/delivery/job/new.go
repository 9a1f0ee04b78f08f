package job

import (
	"context"
	"time"

	"cryptobuzz-srv/internal/stream"
	"cryptobuzz-srv/pkg/log"
	"cryptobuzz-srv/pkg/scheduler"
)

// New returns the price tick: every interval the watched set is fetched and broadcast.
func New(l log.Logger, uc stream.UseCase, interval time.Duration) (scheduler.Job, error) {
	return scheduler.New(l, scheduler.Config{
		Name:     "price-stream",
		Interval: interval,
	}, func(ctx context.Context) error {
		return uc.PublishPrices(ctx)
	})
}
