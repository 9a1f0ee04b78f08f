package cryptopanic

import "errors"

var (
	ErrUpstream      = errors.New("cryptopanic: upstream unavailable")
	ErrMissingAPIKey = errors.New("cryptopanic: api key is not configured")
)
