package usecase

import (
	"context"
	"sync"
	"time"

	"cryptobuzz-srv/internal/price"
	"cryptobuzz-srv/internal/stream"
	"cryptobuzz-srv/pkg/log"
)

const connectPublishTimeout = 10 * time.Second

type Config struct {
	PingInterval   time.Duration
	PongWait       time.Duration
	WriteWait      time.Duration
	MaxMessageSize int64
	MaxConnections int
	// DefaultSymbols seed the watched set.
	DefaultSymbols []string
}

type implUseCase struct {
	l      log.Logger
	hub    *Hub
	prices price.UseCase
	relay  stream.Relay
	cfg    Config
	clock  func() time.Time

	watchedMu sync.RWMutex
	watched   map[string]struct{}
}

var _ stream.UseCase = &implUseCase{}

// New builds the stream usecase. relay may be nil, in which case alerts are broadcast locally only.
func New(l log.Logger, prices price.UseCase, relay stream.Relay, cfg Config) stream.UseCase {
	return newUseCase(l, prices, relay, cfg)
}

func newUseCase(l log.Logger, prices price.UseCase, relay stream.Relay, cfg Config) *implUseCase {
	uc := &implUseCase{
		l:       l,
		hub:     newHub(l, cfg.MaxConnections),
		prices:  prices,
		relay:   relay,
		cfg:     cfg,
		clock:   time.Now,
		watched: make(map[string]struct{}),
	}
	for _, s := range price.NormalizeSymbols(cfg.DefaultSymbols) {
		uc.watched[s] = struct{}{}
	}
	uc.hub.onRegister = func(*Connection) {
		go uc.publishOnConnect()
	}
	return uc
}

func (uc *implUseCase) Run() {
	uc.hub.run()
}

func (uc *implUseCase) Shutdown(ctx context.Context) error {
	return uc.hub.shutdown(ctx)
}

// publishOnConnect sends fresh prices to everyone so a new client does not wait for the next tick.
func (uc *implUseCase) publishOnConnect() {
	ctx, cancel := context.WithTimeout(context.Background(), connectPublishTimeout)
	defer cancel()
	if err := uc.PublishPrices(ctx); err != nil {
		uc.l.Warnf(ctx, "internal.stream.usecase.publishOnConnect: %v", err)
	}
}
