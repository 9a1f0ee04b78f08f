package usecase

import (
	"context"
	"time"

	"cryptobuzz-srv/internal/metrics"
	"cryptobuzz-srv/internal/model"
)

// lookup splits symbols into fresh cached snapshots and the symbols that need a refresh.
func (uc *implUseCase) lookup(symbols []string, now time.Time) (map[string]model.PriceSnapshot, []string) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	fresh := make(map[string]model.PriceSnapshot, len(symbols))
	var stale []string
	for _, s := range symbols {
		q, ok := uc.quotes[s]
		switch {
		case !ok:
			metrics.PriceCacheLookups.WithLabelValues("miss").Inc()
			stale = append(stale, s)
		case now.Sub(q.fetchedAt) >= uc.cfg.QuoteTTL:
			metrics.PriceCacheLookups.WithLabelValues("stale").Inc()
			stale = append(stale, s)
		default:
			metrics.PriceCacheLookups.WithLabelValues("fresh").Inc()
			fresh[s] = q.snap.Clone()
		}
	}
	return fresh, stale
}

func (uc *implUseCase) store(snaps []model.PriceSnapshot, at time.Time) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, s := range snaps {
		uc.quotes[s.Symbol] = cachedQuote{snap: s.Clone(), fetchedAt: at}
	}
}

// lastKnown returns the newest snapshot held anywhere for each symbol, regardless of age.
func (uc *implUseCase) lastKnown(ctx context.Context, symbols []string) map[string]model.PriceSnapshot {
	out := make(map[string]model.PriceSnapshot, len(symbols))
	var missing []string

	uc.mu.RLock()
	for _, s := range symbols {
		if q, ok := uc.quotes[s]; ok {
			out[s] = q.snap.Clone()
			continue
		}
		missing = append(missing, s)
	}
	uc.mu.RUnlock()

	if len(missing) == 0 || uc.snapshots == nil {
		return out
	}

	persisted, err := uc.snapshots.Get(ctx, missing)
	if err != nil {
		uc.l.Warnf(ctx, "internal.price.usecase.lastKnown.Get: %v", err)
		return out
	}
	for s, snap := range persisted {
		out[s] = snap
	}
	return out
}

func (uc *implUseCase) persist(ctx context.Context, snaps []model.PriceSnapshot) {
	if uc.snapshots == nil || len(snaps) == 0 {
		return
	}
	if err := uc.snapshots.Save(ctx, snaps); err != nil {
		uc.l.Warnf(ctx, "internal.price.usecase.persist.Save: %v", err)
	}
}
