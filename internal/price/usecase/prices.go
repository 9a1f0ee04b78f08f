package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"

	"cryptobuzz-srv/internal/metrics"
	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/price"
	"cryptobuzz-srv/pkg/coinmarketcap"
)

func (uc *implUseCase) GetPrices(ctx context.Context, ip price.GetPricesInput) (price.GetPricesOutput, error) {
	symbols := price.NormalizeSymbols(ip.Symbols)
	if len(ip.Symbols) == 0 {
		symbols = price.PopularSymbols
	}

	out := price.GetPricesOutput{Prices: make(map[string]model.PriceSnapshot, len(symbols))}
	if len(symbols) == 0 {
		return out, nil
	}

	fresh, stale := uc.lookup(symbols, uc.clock())
	for s, snap := range fresh {
		out.Prices[s] = snap
	}
	if len(stale) == 0 {
		return out, nil
	}

	fetched, err := uc.refresh(ctx, stale)
	if err != nil {
		uc.l.Warnf(ctx, "internal.price.usecase.GetPrices.refresh: serving last known prices for %v: %v", stale, err)
	}

	var unresolved []string
	for _, s := range stale {
		if snap, ok := fetched[s]; ok {
			out.Prices[s] = snap.Clone()
			continue
		}
		unresolved = append(unresolved, s)
	}

	// Unknown upstream or upstream down: last known value, or omitted.
	if len(unresolved) > 0 {
		for s, snap := range uc.lastKnown(ctx, unresolved) {
			out.Prices[s] = snap
		}
	}
	return out, nil
}

func (uc *implUseCase) GetPrice(ctx context.Context, symbol string) (model.PriceSnapshot, error) {
	s, ok := price.NormalizeSymbol(symbol)
	if !ok {
		return model.PriceSnapshot{}, price.ErrInvalidSymbol
	}

	o, err := uc.GetPrices(ctx, price.GetPricesInput{Symbols: []string{s}})
	if err != nil {
		uc.l.Errorf(ctx, "internal.price.usecase.GetPrice.GetPrices: %v", err)
		return model.PriceSnapshot{}, err
	}

	snap, ok := o.Prices[s]
	if !ok {
		return model.PriceSnapshot{}, price.ErrCoinNotFound
	}
	return snap, nil
}

// refresh fetches symbols in one upstream call. Concurrent refreshes of the same set share the call.
func (uc *implUseCase) refresh(ctx context.Context, symbols []string) (map[string]model.PriceSnapshot, error) {
	sorted := slices.Clone(symbols)
	slices.Sort(sorted)
	key := "quotes:" + strings.Join(sorted, ",")

	v, err, _ := uc.group.Do(key, func() (any, error) {
		// Detached so a cancelled first caller does not fail the callers sharing this flight.
		fctx := context.WithoutCancel(ctx)

		quotes, err := uc.client.QuotesLatest(fctx, sorted)
		if err != nil {
			metrics.UpstreamRequests.WithLabelValues("coinmarketcap", "quotes", upstreamResult(err)).Inc()
			return nil, err
		}
		metrics.UpstreamRequests.WithLabelValues("coinmarketcap", "quotes", "ok").Inc()

		now := uc.clock()
		snaps := make(map[string]model.PriceSnapshot, len(quotes))
		list := make([]model.PriceSnapshot, 0, len(quotes))
		for s, q := range quotes {
			snap := toSnapshot(q, now)
			snap.Symbol = s
			snaps[s] = snap
			list = append(list, snap)
		}
		uc.store(list, now)
		uc.persist(fctx, list)
		return snaps, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]model.PriceSnapshot), nil
}

func upstreamResult(err error) string {
	if errors.Is(err, coinmarketcap.ErrRateLimited) {
		return "rate_limited"
	}
	return "error"
}
