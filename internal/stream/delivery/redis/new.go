package redis

import (
	"context"
	"sync"

	"cryptobuzz-srv/internal/stream"
	"cryptobuzz-srv/pkg/log"
	pkgRedis "cryptobuzz-srv/pkg/redis"

	"github.com/redis/go-redis/v9"
)

// EventsChannel carries encoded stream events between instances.
const EventsChannel = "stream:events"

type Subscriber interface {
	Start() error
	Shutdown(ctx context.Context) error
}

type subscriber struct {
	redis  pkgRedis.IRedis
	uc     stream.UseCase
	logger log.Logger

	pubsub *redis.PubSub
	wg     sync.WaitGroup
	quit   chan struct{}
	once   sync.Once
}

// New returns the subscriber that feeds relayed events into the local hub.
func New(r pkgRedis.IRedis, uc stream.UseCase, logger log.Logger) Subscriber {
	return &subscriber{
		redis:  r,
		uc:     uc,
		logger: logger,
		quit:   make(chan struct{}),
	}
}

type publisher struct {
	redis pkgRedis.IRedis
}

// NewRelay returns the publishing side of the relay.
func NewRelay(r pkgRedis.IRedis) stream.Relay {
	return &publisher{redis: r}
}

func (p *publisher) Publish(ctx context.Context, raw []byte) error {
	return p.redis.Publish(ctx, EventsChannel, raw)
}
