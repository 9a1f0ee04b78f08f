package coinmarketcap

import "time"

const (
	DefaultBaseURL           = "https://pro-api.coinmarketcap.com"
	DefaultTimeout           = 10 * time.Second
	DefaultRequestsPerMinute = 30

	quotesPath   = "/v1/cryptocurrency/quotes/latest"
	listingsPath = "/v1/cryptocurrency/listings/latest"
	apiKeyHeader = "X-CMC_PRO_API_KEY"
	convertUSD   = "USD"
	maxBodyBytes = 4 << 20
)
