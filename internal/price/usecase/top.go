package usecase

import (
	"context"

	"cryptobuzz-srv/internal/metrics"
	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/price"
)

const listingKey = "listing"

func (uc *implUseCase) GetTopCoins(ctx context.Context, ip price.GetTopCoinsInput) ([]model.PriceSnapshot, error) {
	limit := ip.Limit
	if limit <= 0 {
		limit = price.DefaultTopLimit
	}
	if limit > price.MaxTopLimit {
		limit = price.MaxTopLimit
	}

	now := uc.clock()
	uc.mu.RLock()
	cached := uc.listing
	uc.mu.RUnlock()

	coins := cached.coins
	if cached.fetchedAt.IsZero() || now.Sub(cached.fetchedAt) >= uc.cfg.ListingTTL {
		fetched, err := uc.refreshListing(ctx)
		if err != nil {
			uc.l.Warnf(ctx, "internal.price.usecase.GetTopCoins.refreshListing: serving cached listing: %v", err)
		} else {
			coins = fetched
		}
	}

	if len(coins) > limit {
		coins = coins[:limit]
	}
	out := make([]model.PriceSnapshot, len(coins))
	for i, c := range coins {
		out[i] = c.Clone()
	}
	return out, nil
}

// refreshListing always fetches MaxTopLimit so every smaller limit is served from the same entry.
func (uc *implUseCase) refreshListing(ctx context.Context) ([]model.PriceSnapshot, error) {
	v, err, _ := uc.group.Do(listingKey, func() (any, error) {
		fctx := context.WithoutCancel(ctx)

		quotes, err := uc.client.ListingsLatest(fctx, price.MaxTopLimit)
		if err != nil {
			metrics.UpstreamRequests.WithLabelValues("coinmarketcap", "listings", upstreamResult(err)).Inc()
			return nil, err
		}
		metrics.UpstreamRequests.WithLabelValues("coinmarketcap", "listings", "ok").Inc()

		now := uc.clock()
		coins := make([]model.PriceSnapshot, len(quotes))
		for i, q := range quotes {
			coins[i] = toSnapshot(q, now)
		}

		uc.mu.Lock()
		uc.listing = cachedListing{coins: coins, fetchedAt: now}
		uc.mu.Unlock()

		uc.store(coins, now)
		uc.persist(fctx, coins)
		return coins, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.PriceSnapshot), nil
}
