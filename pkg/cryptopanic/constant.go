package cryptopanic

import "time"

const (
	DefaultBaseURL = "https://cryptopanic.com"
	DefaultTimeout = 10 * time.Second

	postsPath    = "/api/v1/posts/"
	breakerName  = "cryptopanic"
	maxBodyBytes = 4 << 20

	breakerMinRequests  = 5
	breakerFailureRatio = 0.6
	breakerInterval     = time.Minute
	breakerCooldown     = 2 * time.Minute
)
