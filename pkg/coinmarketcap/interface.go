package coinmarketcap

import (
	"context"
	"net/http"
	"time"

	"cryptobuzz-srv/pkg/log"

	"golang.org/x/time/rate"
)

//go:generate mockery --name Client
type Client interface {
	// QuotesLatest fetches all symbols in one request. Symbols unknown upstream are absent from the map.
	QuotesLatest(ctx context.Context, symbols []string) (map[string]Quote, error)
	// ListingsLatest returns the top limit coins by market cap.
	ListingsLatest(ctx context.Context, limit int) ([]Quote, error)
}

func New(l log.Logger, cfg Config) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = DefaultRequestsPerMinute
	}

	return &clientImpl{
		l:       l,
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 3),
	}
}
