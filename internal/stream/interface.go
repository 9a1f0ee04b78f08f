package stream

import "context"

// UseCase owns the live price feed: connected clients, the watched symbol set and event fan-out.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Lifecycle
	Run()
	Shutdown(ctx context.Context) error

	// Connections
	Register(ctx context.Context, input ConnectionInput) error
	Subscribe(ctx context.Context, input SubscribeInput) error
	Unsubscribe(ctx context.Context, input SubscribeInput) error

	// Watched symbols
	AddWatchedSymbol(ctx context.Context, symbol string)
	WatchedSymbols(ctx context.Context) []string

	// Fan-out
	Broadcast(ctx context.Context, event Event) error
	BroadcastAlert(ctx context.Context, input AlertTriggeredInput) error
	// RelayEvent delivers an already encoded event received from another instance.
	RelayEvent(ctx context.Context, raw []byte) error
	PublishPrices(ctx context.Context) error

	GetStats(ctx context.Context) HubStats
}

// Relay forwards encoded events to every instance, including this one.
type Relay interface {
	Publish(ctx context.Context, raw []byte) error
}
