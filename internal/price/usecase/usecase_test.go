package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/price"
	"cryptobuzz-srv/internal/price/repository"
	"cryptobuzz-srv/pkg/coinmarketcap"
	"cryptobuzz-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu       sync.Mutex
	quotes   map[string]coinmarketcap.Quote
	listing  []coinmarketcap.Quote
	err      error
	calls    int32
	lastReq  []string
	block    chan struct{}
	listings int32
}

func (f *fakeClient) QuotesLatest(_ context.Context, symbols []string) (map[string]coinmarketcap.Quote, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastReq = symbols
	if f.err != nil {
		return nil, f.err
	}
	out := map[string]coinmarketcap.Quote{}
	for _, s := range symbols {
		if q, ok := f.quotes[s]; ok {
			out[s] = q
		}
	}
	return out, nil
}

func (f *fakeClient) ListingsLatest(_ context.Context, limit int) ([]coinmarketcap.Quote, error) {
	atomic.AddInt32(&f.listings, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.listing, nil
}

func (f *fakeClient) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

type fakeSnapshots struct {
	saved map[string]model.PriceSnapshot
}

func (f *fakeSnapshots) Save(_ context.Context, snaps []model.PriceSnapshot) error {
	for _, s := range snaps {
		f.saved[s.Symbol] = s
	}
	return nil
}

func (f *fakeSnapshots) Get(_ context.Context, symbols []string) (map[string]model.PriceSnapshot, error) {
	out := map[string]model.PriceSnapshot{}
	for _, s := range symbols {
		if v, ok := f.saved[s]; ok {
			out[s] = v
		}
	}
	return out, nil
}

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time      { return c.now }
func (c *testClock) Add(d time.Duration) { c.now = c.now.Add(d) }

func newTestUseCase(client coinmarketcap.Client, snaps *fakeSnapshots) (*implUseCase, *testClock) {
	clk := &testClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	var repo repository.SnapshotRepository
	if snaps != nil {
		repo = snaps
	}
	uc := New(log.NewNop(), client, repo, Config{}).(*implUseCase)
	uc.clock = clk.Now
	return uc, clk
}

func btcEth() map[string]coinmarketcap.Quote {
	return map[string]coinmarketcap.Quote{
		"BTC": {ID: 1, Symbol: "BTC", Name: "Bitcoin", Price: 50000, PercentChange24h: 10},
		"ETH": {ID: 1027, Symbol: "ETH", Name: "Ethereum", Price: 3000},
	}
}

func TestGetPricesCachesWithinWindow(t *testing.T) {
	client := &fakeClient{quotes: btcEth()}
	uc, clk := newTestUseCase(client, nil)
	ctx := context.Background()

	o1, err := uc.GetPrices(ctx, price.GetPricesInput{Symbols: []string{"btc", "ETH"}})
	require.NoError(t, err)
	clk.Add(5 * time.Second)
	o2, err := uc.GetPrices(ctx, price.GetPricesInput{Symbols: []string{"BTC", "ETH"}})
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&client.calls))
	assert.Equal(t, o1.Prices["BTC"].Price, o2.Prices["BTC"].Price)
	assert.ElementsMatch(t, []string{"BTC", "ETH"}, client.lastReq)

	clk.Add(5 * time.Second)
	_, err = uc.GetPrices(ctx, price.GetPricesInput{Symbols: []string{"BTC"}})
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&client.calls))
	assert.Equal(t, []string{"BTC"}, client.lastReq)
}

func TestGetPricesFetchesOnlyStaleSubset(t *testing.T) {
	client := &fakeClient{quotes: btcEth()}
	uc, _ := newTestUseCase(client, nil)
	ctx := context.Background()

	_, err := uc.GetPrices(ctx, price.GetPricesInput{Symbols: []string{"BTC"}})
	require.NoError(t, err)
	_, err = uc.GetPrices(ctx, price.GetPricesInput{Symbols: []string{"BTC", "ETH"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"ETH"}, client.lastReq)
}

func TestGetPricesFallsBackOnUpstreamFailure(t *testing.T) {
	client := &fakeClient{quotes: btcEth()}
	uc, clk := newTestUseCase(client, nil)
	ctx := context.Background()

	_, err := uc.GetPrices(ctx, price.GetPricesInput{Symbols: []string{"BTC"}})
	require.NoError(t, err)

	clk.Add(time.Minute)
	client.setErr(coinmarketcap.ErrUpstream)

	o, err := uc.GetPrices(ctx, price.GetPricesInput{Symbols: []string{"BTC", "ETH"}})
	require.NoError(t, err)
	assert.Equal(t, 50000.0, o.Prices["BTC"].Price)
	assert.NotContains(t, o.Prices, "ETH")
}

func TestGetPricesFallsBackToPersistedSnapshot(t *testing.T) {
	snaps := &fakeSnapshots{saved: map[string]model.PriceSnapshot{"SOL": {Symbol: "SOL", Price: 150}}}
	client := &fakeClient{err: errors.New("down")}
	uc, _ := newTestUseCase(client, snaps)

	o, err := uc.GetPrices(context.Background(), price.GetPricesInput{Symbols: []string{"SOL"}})
	require.NoError(t, err)
	assert.Equal(t, 150.0, o.Prices["SOL"].Price)
}

func TestGetPricesPersistsFetchedSnapshots(t *testing.T) {
	snaps := &fakeSnapshots{saved: map[string]model.PriceSnapshot{}}
	uc, _ := newTestUseCase(&fakeClient{quotes: btcEth()}, snaps)

	_, err := uc.GetPrices(context.Background(), price.GetPricesInput{Symbols: []string{"BTC"}})
	require.NoError(t, err)
	assert.Equal(t, 50000.0, snaps.saved["BTC"].Price)
}

func TestGetPricesDefaultsToPopular(t *testing.T) {
	client := &fakeClient{quotes: btcEth()}
	uc, _ := newTestUseCase(client, nil)

	_, err := uc.GetPrices(context.Background(), price.GetPricesInput{})
	require.NoError(t, err)
	assert.ElementsMatch(t, price.PopularSymbols, client.lastReq)
}

func TestGetPricesSingleFlight(t *testing.T) {
	client := &fakeClient{quotes: btcEth(), block: make(chan struct{})}
	uc, _ := newTestUseCase(client, nil)

	var wg sync.WaitGroup
	results := make([]price.GetPricesOutput, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = uc.GetPrices(context.Background(), price.GetPricesInput{Symbols: []string{"ETH", "BTC"}})
		}(i)
	}

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&client.calls) >= 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(client.block)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&client.calls))
	for _, r := range results {
		assert.Equal(t, 3000.0, r.Prices["ETH"].Price)
	}
}

func TestGetPricesReturnsCopies(t *testing.T) {
	uc, _ := newTestUseCase(&fakeClient{quotes: btcEth()}, nil)
	ctx := context.Background()

	o1, _ := uc.GetPrices(ctx, price.GetPricesInput{Symbols: []string{"BTC"}})
	o1.Prices["BTC"].Sparkline[0] = -1

	o2, _ := uc.GetPrices(ctx, price.GetPricesInput{Symbols: []string{"BTC"}})
	assert.NotEqual(t, -1.0, o2.Prices["BTC"].Sparkline[0])
}

func TestGetPrice(t *testing.T) {
	uc, _ := newTestUseCase(&fakeClient{quotes: btcEth()}, nil)
	ctx := context.Background()

	snap, err := uc.GetPrice(ctx, "eth")
	require.NoError(t, err)
	assert.Equal(t, 1027, snap.CmcID)

	_, err = uc.GetPrice(ctx, "NOPE")
	assert.ErrorIs(t, err, price.ErrCoinNotFound)

	_, err = uc.GetPrice(ctx, "not a symbol")
	assert.ErrorIs(t, err, price.ErrInvalidSymbol)
}

func TestGetTopCoins(t *testing.T) {
	client := &fakeClient{listing: []coinmarketcap.Quote{
		{ID: 1, Symbol: "BTC", Price: 50000, Rank: 1},
		{ID: 1027, Symbol: "ETH", Price: 3000, Rank: 2},
		{ID: 5426, Symbol: "SOL", Price: 150, Rank: 3},
	}}
	uc, clk := newTestUseCase(client, nil)
	ctx := context.Background()

	top, err := uc.GetTopCoins(ctx, price.GetTopCoinsInput{Limit: 2})
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "ETH", top[1].Symbol)

	// Listing entries warm the quote cache.
	_, err = uc.GetPrices(ctx, price.GetPricesInput{Symbols: []string{"SOL"}})
	require.NoError(t, err)
	assert.Zero(t, atomic.LoadInt32(&client.calls))

	clk.Add(30 * time.Second)
	_, err = uc.GetTopCoins(ctx, price.GetTopCoinsInput{})
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&client.listings))

	clk.Add(time.Minute)
	client.setErr(errors.New("down"))
	top, err = uc.GetTopCoins(ctx, price.GetTopCoinsInput{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, top, 3)
	assert.Equal(t, int32(2), atomic.LoadInt32(&client.listings))
}

func TestDerivedFields(t *testing.T) {
	high, low := dayRange(100, -5)
	assert.InDelta(t, 105, high, 1e-9)
	assert.InDelta(t, 95, low, 1e-9)

	line := sparkline(110, 10)
	require.Len(t, line, sparklinePoints)
	assert.InDelta(t, 100, line[0], 1e-9)
	assert.Equal(t, 110.0, line[sparklinePoints-1])

	flat := sparkline(5, -100)
	assert.Equal(t, 5.0, flat[0])
}
