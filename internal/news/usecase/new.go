package usecase

import (
	"sync"
	"time"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/news"
	"cryptobuzz-srv/internal/news/repository"
	"cryptobuzz-srv/pkg/cryptopanic"
	"cryptobuzz-srv/pkg/log"

	"golang.org/x/sync/singleflight"
)

type Config struct {
	CacheTTL time.Duration
}

type cachedNews struct {
	items     []model.NewsItem
	fetchedAt time.Time
}

type implUseCase struct {
	l      log.Logger
	client cryptopanic.Client
	repo   repository.Repository
	cfg    Config
	clock  func() time.Time

	group singleflight.Group
	mu    sync.RWMutex
	cache cachedNews
}

var _ news.UseCase = &implUseCase{}

func New(l log.Logger, client cryptopanic.Client, repo repository.Repository, cfg Config) news.UseCase {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = news.DefaultCacheTTL
	}
	return &implUseCase{
		l:      l,
		client: client,
		repo:   repo,
		cfg:    cfg,
		clock:  time.Now,
	}
}
