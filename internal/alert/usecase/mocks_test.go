package usecase

import (
	"context"
	"sync"

	"cryptobuzz-srv/internal/alert/repository"
	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/news"
	"cryptobuzz-srv/internal/price"
	"cryptobuzz-srv/internal/stream"
	"cryptobuzz-srv/pkg/discord"
	"cryptobuzz-srv/pkg/paginator"

	"github.com/stretchr/testify/mock"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Alert, error) {
	args := m.Called(ctx, sc, opts)
	return args.Get(0).(model.Alert), args.Error(1)
}

func (m *mockRepo) Detail(ctx context.Context, sc model.Scope, id string) (model.Alert, error) {
	args := m.Called(ctx, sc, id)
	return args.Get(0).(model.Alert), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Alert, error) {
	args := m.Called(ctx, sc, opts)
	return args.Get(0).([]model.Alert), args.Error(1)
}

func (m *mockRepo) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.Alert, error) {
	args := m.Called(ctx, sc, opts)
	return args.Get(0).(model.Alert), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Alert, error) {
	args := m.Called(ctx, sc, opts)
	return args.Get(0).(model.Alert), args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, sc model.Scope, id string) error {
	return m.Called(ctx, sc, id).Error(0)
}

func (m *mockRepo) ListActive(ctx context.Context) ([]model.Alert, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Alert), args.Error(1)
}

func (m *mockRepo) RecordFire(ctx context.Context, opts repository.RecordFireOptions) (model.AlertFire, bool, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(model.AlertFire), args.Bool(1), args.Error(2)
}

func (m *mockRepo) ListFires(ctx context.Context, sc model.Scope, opts repository.ListFiresOptions) ([]model.AlertFire, paginator.Paginator, error) {
	args := m.Called(ctx, sc, opts)
	return args.Get(0).([]model.AlertFire), args.Get(1).(paginator.Paginator), args.Error(2)
}

// fakePrices serves one price table per GetPrices call; the last table repeats.
type fakePrices struct {
	mu     sync.Mutex
	ticks  []map[string]float64
	calls  [][]string
	served int
}

func (f *fakePrices) GetPrices(_ context.Context, ip price.GetPricesInput) (price.GetPricesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, ip.Symbols)
	idx := min(f.served, len(f.ticks)-1)
	f.served++

	out := price.GetPricesOutput{Prices: map[string]model.PriceSnapshot{}}
	if idx < 0 {
		return out, nil
	}
	for _, sym := range ip.Symbols {
		if p, ok := f.ticks[idx][sym]; ok {
			out.Prices[sym] = model.PriceSnapshot{Symbol: sym, Price: p}
		}
	}
	return out, nil
}

func (f *fakePrices) GetPrice(context.Context, string) (model.PriceSnapshot, error) {
	return model.PriceSnapshot{}, nil
}

func (f *fakePrices) GetTopCoins(context.Context, price.GetTopCoinsInput) ([]model.PriceSnapshot, error) {
	return nil, nil
}

type fakeStream struct {
	mu      sync.Mutex
	alerts  []stream.AlertTriggeredInput
	panicOn string
}

func (f *fakeStream) BroadcastAlert(_ context.Context, ip stream.AlertTriggeredInput) error {
	if ip.AlertID == f.panicOn {
		panic("socket exploded")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, ip)
	return nil
}

func (f *fakeStream) Run()                                                   {}
func (f *fakeStream) Shutdown(context.Context) error                         { return nil }
func (f *fakeStream) Register(context.Context, stream.ConnectionInput) error { return nil }
func (f *fakeStream) Subscribe(context.Context, stream.SubscribeInput) error { return nil }
func (f *fakeStream) Unsubscribe(context.Context, stream.SubscribeInput) error {
	return nil
}
func (f *fakeStream) AddWatchedSymbol(context.Context, string)      {}
func (f *fakeStream) WatchedSymbols(context.Context) []string       { return nil }
func (f *fakeStream) Broadcast(context.Context, stream.Event) error { return nil }
func (f *fakeStream) RelayEvent(context.Context, []byte) error      { return nil }
func (f *fakeStream) PublishPrices(context.Context) error           { return nil }
func (f *fakeStream) GetStats(context.Context) stream.HubStats      { return stream.HubStats{} }

type fakeNews struct {
	headline model.NewsItem
}

func (f *fakeNews) HeadlineFor(context.Context, string) (model.NewsItem, bool) {
	return f.headline, f.headline.Title != ""
}

func (f *fakeNews) List(context.Context, news.ListInput) ([]model.NewsItem, error) { return nil, nil }
func (f *fakeNews) Latest(context.Context, news.LatestInput) ([]model.NewsItem, error) {
	return nil, nil
}
func (f *fakeNews) Ingest(context.Context) (news.IngestOutput, error) {
	return news.IngestOutput{}, nil
}

type fakeDiscord struct {
	mu     sync.Mutex
	sent   []discord.PriceAlert
	errors []error
	// block, when set, holds SendPriceAlert until closed.
	block chan struct{}
}

func (f *fakeDiscord) SendPriceAlert(_ context.Context, a discord.PriceAlert) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, a)
	return nil
}

func (f *fakeDiscord) SendError(_ context.Context, _, _ string, err error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = append(f.errors, err)
	return nil
}

func (f *fakeDiscord) errorCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.errors)
}

func (f *fakeDiscord) SendEmbed(context.Context, discord.MessageOptions) error { return nil }
func (f *fakeDiscord) SendInfo(context.Context, string, string) error          { return nil }
func (f *fakeDiscord) ReportBug(context.Context, string) error                 { return nil }
func (f *fakeDiscord) Close() error                                            { return nil }
