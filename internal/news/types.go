package news

import "time"

const (
	DefaultListLimit = 50
	MaxListLimit     = 100

	// CurrencyAll lists news regardless of tagged currency.
	CurrencyAll = "all"

	DefaultCacheTTL = 2 * time.Minute
)

type ListInput struct {
	Currency string
	Limit    int
}

type LatestInput struct {
	Currencies []string
}

type IngestOutput struct {
	Fetched int
	Stored  int
}
