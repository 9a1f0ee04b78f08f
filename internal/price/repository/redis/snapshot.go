package redis

import (
	"context"
	"fmt"

	"cryptobuzz-srv/internal/model"

	"github.com/goccy/go-json"
)

func (r *implRepository) Save(ctx context.Context, snaps []model.PriceSnapshot) error {
	for _, s := range snaps {
		b, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", s.Symbol, err)
		}
		if err := r.redis.Set(ctx, key(s.Symbol), b, snapshotTTL); err != nil {
			r.l.Warnf(ctx, "internal.price.repository.redis.Save.Set: %s: %v", s.Symbol, err)
			return err
		}
	}
	return nil
}

func (r *implRepository) Get(ctx context.Context, symbols []string) (map[string]model.PriceSnapshot, error) {
	out := make(map[string]model.PriceSnapshot, len(symbols))
	if len(symbols) == 0 {
		return out, nil
	}

	keys := make([]string, len(symbols))
	for i, s := range symbols {
		keys[i] = key(s)
	}

	vals, err := r.redis.MGet(ctx, keys...)
	if err != nil {
		r.l.Warnf(ctx, "internal.price.repository.redis.Get.MGet: %v", err)
		return nil, err
	}

	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var snap model.PriceSnapshot
		if err := json.Unmarshal([]byte(raw), &snap); err != nil {
			r.l.Warnf(ctx, "internal.price.repository.redis.Get.Unmarshal: %s: %v", symbols[i], err)
			continue
		}
		out[symbols[i]] = snap
	}
	return out, nil
}
