package httpserver

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"cryptobuzz-srv/config"
	"cryptobuzz-srv/internal/stream"
	streamRedis "cryptobuzz-srv/internal/stream/delivery/redis"
	"cryptobuzz-srv/pkg/coinmarketcap"
	"cryptobuzz-srv/pkg/cryptopanic"
	"cryptobuzz-srv/pkg/discord"
	"cryptobuzz-srv/pkg/log"
	pkgRedis "cryptobuzz-srv/pkg/redis"
	"cryptobuzz-srv/pkg/scheduler"

	"github.com/gin-gonic/gin"
)

const (
	defaultShutdownTimeout = 15 * time.Second
	announceTimeout        = 10 * time.Second
)

// HTTPServer holds every dependency of the service.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) starts background services and serves HTTP.
type HTTPServer struct {
	// Server configuration
	gin         *gin.Engine
	server      *http.Server
	logger      log.Logger
	host        string
	port        int
	environment string

	// Storage
	postgres *sql.DB
	redis    pkgRedis.IRedis

	// Upstream providers
	cmc         coinmarketcap.Client
	cryptoPanic cryptopanic.Client

	// Tuning
	wsConfig      config.WebSocketConfig
	engine        config.EngineConfig
	quoteTTL      time.Duration
	listingTTL    time.Duration
	newsCacheTTL  time.Duration
	demoUserEmail string

	// Built by mapHandlers
	streamUC     stream.UseCase
	wsSubscriber streamRedis.Subscriber
	jobs         []scheduler.Job

	// External services
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Storage. Redis is optional.
	Postgres *sql.DB
	Redis    pkgRedis.IRedis

	// Upstream providers
	CoinMarketCap coinmarketcap.Client
	CryptoPanic   cryptopanic.Client

	WSConfig      config.WebSocketConfig
	Engine        config.EngineConfig
	QuoteTTL      time.Duration
	ListingTTL    time.Duration
	NewsCacheTTL  time.Duration
	DemoUserEmail string

	// Optional
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// It does NOT start any goroutines. Use (*HTTPServer).Run() to start the service.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:         gin.New(),
		logger:      logger,
		host:        cfg.Host,
		port:        cfg.Port,
		environment: cfg.Environment,

		postgres: cfg.Postgres,
		redis:    cfg.Redis,

		cmc:         cfg.CoinMarketCap,
		cryptoPanic: cfg.CryptoPanic,

		wsConfig:      cfg.WSConfig,
		engine:        cfg.Engine,
		quoteTTL:      cfg.QuoteTTL,
		listingTTL:    cfg.ListingTTL,
		newsCacheTTL:  cfg.NewsCacheTTL,
		demoUserEmail: cfg.DemoUserEmail,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgres == nil {
		return errors.New("PostgreSQL client is required")
	}
	if srv.cmc == nil {
		return errors.New("CoinMarketCap client is required")
	}
	if srv.cryptoPanic == nil {
		return errors.New("CryptoPanic client is required")
	}
	if srv.demoUserEmail == "" {
		return errors.New("demo user email is required")
	}
	if srv.engine.AlertInterval <= 0 || srv.engine.StreamInterval <= 0 || srv.engine.NewsInterval <= 0 {
		return errors.New("engine intervals must be positive")
	}

	return nil
}
