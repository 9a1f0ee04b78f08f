package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	Postgres PostgresConfig
	Redis    RedisConfig

	WebSocket WebSocketConfig
	Engine    EngineConfig

	CoinMarketCap CoinMarketCapConfig
	CryptoPanic   CryptoPanicConfig

	Discord  DiscordConfig
	DemoUser DemoUserConfig
}

type EnvironmentConfig struct {
	Name string `env:"ENV" envDefault:"development"`
}

type HTTPServerConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"5000"`
	Mode string `env:"GIN_MODE" envDefault:"release"`
}

type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
	FilePath     string `env:"LOGGER_FILE_PATH"`
	MaxSizeMB    int    `env:"LOGGER_MAX_SIZE_MB" envDefault:"100"`
	MaxBackups   int    `env:"LOGGER_MAX_BACKUPS" envDefault:"5"`
	MaxAgeDays   int    `env:"LOGGER_MAX_AGE_DAYS" envDefault:"14"`
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"cryptobuzz"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	MaxOpenConns    int           `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"POSTGRES_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// RedisConfig is optional: leaving REDIS_HOST empty disables the price L2 cache and the event relay.
type RedisConfig struct {
	Host         string `env:"REDIS_HOST"`
	Port         int    `env:"REDIS_PORT" envDefault:"6379"`
	Password     string `env:"REDIS_PASSWORD"`
	DB           int    `env:"REDIS_DB" envDefault:"0"`
	UseTLS       bool   `env:"REDIS_USE_TLS" envDefault:"false"`
	PoolSize     int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
	MinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
}

type WebSocketConfig struct {
	PingInterval    time.Duration `env:"WS_PING_INTERVAL" envDefault:"30s"`
	PongWait        time.Duration `env:"WS_PONG_WAIT" envDefault:"60s"`
	WriteWait       time.Duration `env:"WS_WRITE_WAIT" envDefault:"10s"`
	MaxMessageSize  int64         `env:"WS_MAX_MESSAGE_SIZE" envDefault:"4096"`
	ReadBufferSize  int           `env:"WS_READ_BUFFER_SIZE" envDefault:"1024"`
	WriteBufferSize int           `env:"WS_WRITE_BUFFER_SIZE" envDefault:"1024"`
	MaxConnections  int           `env:"WS_MAX_CONNECTIONS" envDefault:"10000"`
	AllowedOrigins  []string      `env:"WS_ALLOWED_ORIGINS" envSeparator:","`
	DefaultSymbols  []string      `env:"WS_DEFAULT_SYMBOLS" envSeparator:"," envDefault:"BTC,ETH,SOL,BNB,XRP"`
}

type EngineConfig struct {
	AlertInterval  time.Duration `env:"ALERT_CHECK_INTERVAL" envDefault:"15s"`
	StreamInterval time.Duration `env:"PRICE_STREAM_INTERVAL" envDefault:"10s"`
	NewsInterval   time.Duration `env:"NEWS_INGEST_INTERVAL" envDefault:"2m"`
}

type CoinMarketCapConfig struct {
	BaseURL           string        `env:"CMC_BASE_URL" envDefault:"https://pro-api.coinmarketcap.com"`
	APIKey            string        `env:"COINMARKETCAP_API_KEY"`
	Timeout           time.Duration `env:"CMC_TIMEOUT" envDefault:"10s"`
	RequestsPerMinute int           `env:"CMC_REQUESTS_PER_MINUTE" envDefault:"30"`
	QuoteTTL          time.Duration `env:"CMC_QUOTE_TTL" envDefault:"10s"`
	ListingTTL        time.Duration `env:"CMC_LISTING_TTL" envDefault:"60s"`
}

type CryptoPanicConfig struct {
	BaseURL  string        `env:"CRYPTOPANIC_BASE_URL" envDefault:"https://cryptopanic.com"`
	APIKey   string        `env:"CRYPTOPANIC_API_KEY"`
	Timeout  time.Duration `env:"CRYPTOPANIC_TIMEOUT" envDefault:"10s"`
	CacheTTL time.Duration `env:"CRYPTOPANIC_CACHE_TTL" envDefault:"2m"`
}

type DiscordConfig struct {
	WebhookURL string `env:"DISCORD_WEBHOOK_URL"`
}

type DemoUserConfig struct {
	Email string `env:"DEMO_USER_EMAIL" envDefault:"demo@cryptobuzz.app"`
}

// Load reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config.Load: read .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("config: invalid PORT %d", c.HTTPServer.Port)
	}
	if c.Engine.AlertInterval <= 0 || c.Engine.StreamInterval <= 0 || c.Engine.NewsInterval <= 0 {
		return errors.New("config: tick intervals must be positive")
	}
	if c.CoinMarketCap.RequestsPerMinute <= 0 {
		return errors.New("config: CMC_REQUESTS_PER_MINUTE must be positive")
	}
	if c.CoinMarketCap.QuoteTTL <= 0 || c.CoinMarketCap.ListingTTL <= 0 {
		return errors.New("config: cache TTLs must be positive")
	}
	return nil
}

// RedisEnabled reports whether a Redis host was configured.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}
