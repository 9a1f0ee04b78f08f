package usecase

import (
	"sync"
	"time"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/price"
	"cryptobuzz-srv/internal/price/repository"
	"cryptobuzz-srv/pkg/coinmarketcap"
	"cryptobuzz-srv/pkg/log"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultQuoteTTL   = 10 * time.Second
	DefaultListingTTL = 60 * time.Second
)

type Config struct {
	QuoteTTL   time.Duration
	ListingTTL time.Duration
}

type cachedQuote struct {
	snap      model.PriceSnapshot
	fetchedAt time.Time
}

type cachedListing struct {
	coins     []model.PriceSnapshot
	fetchedAt time.Time
}

type implUseCase struct {
	l         log.Logger
	client    coinmarketcap.Client
	snapshots repository.SnapshotRepository
	cfg       Config
	clock     func() time.Time

	group singleflight.Group

	mu      sync.RWMutex
	quotes  map[string]cachedQuote
	listing cachedListing
}

var _ price.UseCase = &implUseCase{}

// New builds the price source. snapshots may be nil, in which case fallback is memory-only.
func New(l log.Logger, client coinmarketcap.Client, snapshots repository.SnapshotRepository, cfg Config) price.UseCase {
	if cfg.QuoteTTL <= 0 {
		cfg.QuoteTTL = DefaultQuoteTTL
	}
	if cfg.ListingTTL <= 0 {
		cfg.ListingTTL = DefaultListingTTL
	}
	return &implUseCase{
		l:         l,
		client:    client,
		snapshots: snapshots,
		cfg:       cfg,
		clock:     time.Now,
		quotes:    make(map[string]cachedQuote),
	}
}
