package usecase

import (
	"context"
	"errors"
	"strings"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/price"
	"cryptobuzz-srv/internal/watchlist"
	"cryptobuzz-srv/internal/watchlist/repository"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Watch, error) {
	watches, err := uc.repo.List(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.watchlist.usecase.List.repo.List: %v", err)
		return nil, err
	}
	return watches, nil
}

// Create adds the symbol and starts streaming its price to every client.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, ip watchlist.CreateInput) (model.Watch, error) {
	sym, ok := price.NormalizeSymbol(ip.Symbol)
	if !ok || sym == model.SymbolAll {
		return model.Watch{}, watchlist.ErrInvalidSymbol
	}
	if ip.CmcID != nil && *ip.CmcID <= 0 {
		return model.Watch{}, watchlist.ErrInvalidCmcID
	}

	w, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Symbol: sym,
		CmcID:  ip.CmcID,
		Name:   strings.TrimSpace(ip.Name),
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return model.Watch{}, watchlist.ErrWatchExists
		}
		uc.l.Errorf(ctx, "internal.watchlist.usecase.Create.repo.Create: %v", err)
		return model.Watch{}, err
	}

	uc.stream.AddWatchedSymbol(ctx, sym)
	return w, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return watchlist.ErrWatchNotFound
		}
		uc.l.Errorf(ctx, "internal.watchlist.usecase.Delete.repo.Delete: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) Symbols(ctx context.Context) ([]string, error) {
	symbols, err := uc.repo.Symbols(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.watchlist.usecase.Symbols.repo.Symbols: %v", err)
		return nil, err
	}
	return symbols, nil
}

// Seed adds the demo coins, ignoring duplicates, then pulls a first batch of news.
// A news failure does not fail the seed.
func (uc *implUseCase) Seed(ctx context.Context, sc model.Scope) (watchlist.SeedOutput, error) {
	for _, coin := range watchlist.DemoCoins {
		if _, err := uc.Create(ctx, sc, coin); err != nil && !errors.Is(err, watchlist.ErrWatchExists) {
			return watchlist.SeedOutput{}, err
		}
	}

	watches, err := uc.List(ctx, sc)
	if err != nil {
		return watchlist.SeedOutput{}, err
	}
	out := watchlist.SeedOutput{Watches: watches}

	if uc.news != nil {
		ing, err := uc.news.Ingest(ctx)
		if err != nil {
			uc.l.Warnf(ctx, "internal.watchlist.usecase.Seed.news.Ingest: %v", err)
		}
		out.NewsStored = ing.Stored
	}
	return out, nil
}
