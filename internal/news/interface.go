package news

import (
	"context"

	"cryptobuzz-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, ip ListInput) ([]model.NewsItem, error)
	Latest(ctx context.Context, ip LatestInput) ([]model.NewsItem, error)
	Ingest(ctx context.Context) (IngestOutput, error)
	// HeadlineFor returns the newest stored item mentioning symbol. It never fails; ok is false when nothing matches.
	HeadlineFor(ctx context.Context, symbol string) (model.NewsItem, bool)
}
