package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"

	"cryptobuzz-srv/internal/metrics"
	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/news"
	"cryptobuzz-srv/internal/news/repository"
	"cryptobuzz-srv/internal/price"
)

const latestKey = "latest"

func (uc *implUseCase) List(ctx context.Context, ip news.ListInput) ([]model.NewsItem, error) {
	opts := repository.ListOptions{Limit: ip.Limit}
	if opts.Limit <= 0 {
		opts.Limit = news.DefaultListLimit
	}
	if opts.Limit > news.MaxListLimit {
		opts.Limit = news.MaxListLimit
	}

	cur := strings.TrimSpace(ip.Currency)
	if cur != "" && !strings.EqualFold(cur, news.CurrencyAll) {
		sym, ok := price.NormalizeSymbol(cur)
		if !ok {
			return nil, news.ErrInvalidCurrency
		}
		opts.Filter.Currency = sym
	}

	items, err := uc.repo.List(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.news.usecase.List.repo.List: %v", err)
		return nil, err
	}
	return items, nil
}

// Latest serves the upstream feed through a short cache. Upstream failures degrade to the cached items.
func (uc *implUseCase) Latest(ctx context.Context, ip news.LatestInput) ([]model.NewsItem, error) {
	items, err := uc.latest(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "internal.news.usecase.Latest.latest: serving cached news: %v", err)
	}
	return filterByCurrencies(items, price.NormalizeSymbols(ip.Currencies)), nil
}

func (uc *implUseCase) Ingest(ctx context.Context) (news.IngestOutput, error) {
	items, err := uc.latest(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.news.usecase.Ingest.latest: %v", err)
		return news.IngestOutput{}, err
	}

	stored, err := uc.repo.Upsert(ctx, repository.UpsertOptions{Items: items})
	if err != nil {
		uc.l.Errorf(ctx, "internal.news.usecase.Ingest.repo.Upsert: %v", err)
		return news.IngestOutput{}, err
	}
	metrics.NewsIngested.Add(float64(stored))

	return news.IngestOutput{Fetched: len(items), Stored: stored}, nil
}

func (uc *implUseCase) HeadlineFor(ctx context.Context, symbol string) (model.NewsItem, bool) {
	sym, ok := price.NormalizeSymbol(symbol)
	if !ok {
		return model.NewsItem{}, false
	}

	n, err := uc.repo.GetOne(ctx, repository.GetOneOptions{Filter: repository.Filter{Currency: sym}})
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			uc.l.Warnf(ctx, "internal.news.usecase.HeadlineFor.repo.GetOne: %v", err)
		}
		return model.NewsItem{}, false
	}
	return n, true
}

// latest returns the cached feed while fresh, otherwise refetches it. On failure the stale
// cache is returned together with the error.
func (uc *implUseCase) latest(ctx context.Context) ([]model.NewsItem, error) {
	uc.mu.RLock()
	cached := uc.cache
	uc.mu.RUnlock()

	if !cached.fetchedAt.IsZero() && uc.clock().Sub(cached.fetchedAt) < uc.cfg.CacheTTL {
		return slices.Clone(cached.items), nil
	}

	v, err, _ := uc.group.Do(latestKey, func() (any, error) {
		posts, err := uc.client.Posts(context.WithoutCancel(ctx), nil)
		if err != nil {
			metrics.UpstreamRequests.WithLabelValues("cryptopanic", "posts", "error").Inc()
			return nil, err
		}
		metrics.UpstreamRequests.WithLabelValues("cryptopanic", "posts", "ok").Inc()

		now := uc.clock()
		items := make([]model.NewsItem, 0, len(posts))
		for _, p := range posts {
			items = append(items, toNewsItem(p, now))
		}

		uc.mu.Lock()
		uc.cache = cachedNews{items: items, fetchedAt: now}
		uc.mu.Unlock()
		return items, nil
	})
	if err != nil {
		return slices.Clone(cached.items), err
	}
	return slices.Clone(v.([]model.NewsItem)), nil
}
