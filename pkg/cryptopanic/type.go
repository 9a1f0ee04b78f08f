package cryptopanic

import (
	"net/http"
	"time"

	"cryptobuzz-srv/pkg/log"

	gobreaker "github.com/sony/gobreaker/v2"
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// OnStateChange is called on breaker transitions, e.g. to export a gauge.
	OnStateChange func(from, to string)
}

type Votes struct {
	Positive  int `json:"positive"`
	Negative  int `json:"negative"`
	Important int `json:"important"`
}

type Currency struct {
	Code string `json:"code"`
}

type Source struct {
	Title string `json:"title"`
}

type Post struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Kind        string     `json:"kind"`
	Source      Source     `json:"source"`
	PublishedAt time.Time  `json:"published_at"`
	Currencies  []Currency `json:"currencies"`
	Votes       *Votes     `json:"votes"`
}

type postsResponse struct {
	Results []Post `json:"results"`
}

type clientImpl struct {
	l    log.Logger
	cfg  Config
	http *http.Client
	cb   *gobreaker.CircuitBreaker[[]Post]
}
