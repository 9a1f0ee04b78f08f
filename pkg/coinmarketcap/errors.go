package coinmarketcap

import "errors"

var (
	// ErrUpstream wraps every failure to obtain a usable response.
	ErrUpstream      = errors.New("coinmarketcap: upstream unavailable")
	ErrMissingAPIKey = errors.New("coinmarketcap: api key is not configured")
	ErrRateLimited   = errors.New("coinmarketcap: local rate limit exceeded")
)
