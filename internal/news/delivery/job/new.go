package job

import (
	"context"
	"time"

	"cryptobuzz-srv/internal/news"
	"cryptobuzz-srv/pkg/log"
	"cryptobuzz-srv/pkg/scheduler"
)

// New returns the ingestion loop: every interval the latest upstream news is upserted into the store.
func New(l log.Logger, uc news.UseCase, interval time.Duration) (scheduler.Job, error) {
	return scheduler.New(l, scheduler.Config{
		Name:       "news-ingest",
		Interval:   interval,
		RunOnStart: true,
	}, func(ctx context.Context) error {
		out, err := uc.Ingest(ctx)
		if err != nil {
			return err
		}
		l.Debugf(ctx, "internal.news.delivery.job: fetched %d stored %d", out.Fetched, out.Stored)
		return nil
	})
}
