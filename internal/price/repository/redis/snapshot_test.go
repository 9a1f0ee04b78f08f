package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/pkg/log"
	pkgRedis "cryptobuzz-srv/pkg/redis"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	pkgRedis.IRedis
	data   map[string]string
	ttls   map[string]time.Duration
	mgetFn func(keys ...string) ([]interface{}, error)
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	f.data[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return nil
}

func (f *fakeRedis) MGet(_ context.Context, keys ...string) ([]interface{}, error) {
	if f.mgetFn != nil {
		return f.mgetFn(keys...)
	}
	out := make([]interface{}, len(keys))
	for i, k := range keys {
		if v, ok := f.data[k]; ok {
			out[i] = v
		}
	}
	return out, nil
}

func TestSaveAndGet(t *testing.T) {
	fr := newFakeRedis()
	repo := New(log.NewNop(), fr)

	err := repo.Save(context.Background(), []model.PriceSnapshot{{Symbol: "BTC", Price: 50000, Sparkline: []float64{1}}})
	require.NoError(t, err)
	assert.Equal(t, snapshotTTL, fr.ttls["price:snapshot:BTC"])

	got, err := repo.Get(context.Background(), []string{"BTC", "ETH"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 50000.0, got["BTC"].Price)
}

func TestGetSkipsCorruptEntries(t *testing.T) {
	fr := newFakeRedis()
	good, _ := json.Marshal(model.PriceSnapshot{Symbol: "ETH", Price: 3000})
	fr.data["price:snapshot:BTC"] = "{not json"
	fr.data["price:snapshot:ETH"] = string(good)

	got, err := New(log.NewNop(), fr).Get(context.Background(), []string{"BTC", "ETH"})
	require.NoError(t, err)
	assert.NotContains(t, got, "BTC")
	assert.Equal(t, 3000.0, got["ETH"].Price)
}

func TestGetPropagatesError(t *testing.T) {
	fr := newFakeRedis()
	fr.mgetFn = func(keys ...string) ([]interface{}, error) { return nil, errors.New("conn refused") }

	_, err := New(log.NewNop(), fr).Get(context.Background(), []string{"BTC"})
	assert.Error(t, err)
}
