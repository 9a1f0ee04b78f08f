package cryptopanic

import (
	"context"
	"net/http"

	"cryptobuzz-srv/pkg/log"

	gobreaker "github.com/sony/gobreaker/v2"
)

//go:generate mockery --name Client
type Client interface {
	// Posts returns the latest public news posts, filtered by currency codes when given.
	Posts(ctx context.Context, currencies []string) ([]Post, error)
}

func New(l log.Logger, cfg Config) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &clientImpl{
		l:    l,
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
	c.cb = gobreaker.NewCircuitBreaker[[]Post](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    breakerInterval,
		Timeout:     breakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < breakerMinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= breakerFailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.l.Warnf(context.Background(), "pkg.cryptopanic.breaker: %s %s -> %s", name, from, to)
			if cfg.OnStateChange != nil {
				cfg.OnStateChange(from.String(), to.String())
			}
		},
	})
	return c
}
