package coinmarketcap

import (
	"net/http"
	"time"

	"cryptobuzz-srv/pkg/log"

	"golang.org/x/time/rate"
)

type Config struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerMinute int
}

// Quote is one USD quote as reported upstream.
type Quote struct {
	ID               int
	Name             string
	Symbol           string
	Rank             int
	Price            float64
	PercentChange24h float64
	Volume24h        float64
	MarketCap        float64
	LastUpdated      time.Time
}

type clientImpl struct {
	l       log.Logger
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
}

type status struct {
	ErrorCode    int     `json:"error_code"`
	ErrorMessage *string `json:"error_message"`
}

type usdQuote struct {
	Price            float64   `json:"price"`
	Volume24h        float64   `json:"volume_24h"`
	PercentChange24h float64   `json:"percent_change_24h"`
	MarketCap        float64   `json:"market_cap"`
	LastUpdated      time.Time `json:"last_updated"`
}

type coin struct {
	ID      int                 `json:"id"`
	Name    string              `json:"name"`
	Symbol  string              `json:"symbol"`
	CmcRank int                 `json:"cmc_rank"`
	Quote   map[string]usdQuote `json:"quote"`
}

type quotesResponse struct {
	Status status          `json:"status"`
	Data   map[string]coin `json:"data"`
}

type listingsResponse struct {
	Status status `json:"status"`
	Data   []coin `json:"data"`
}
