package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cryptobuzz-srv/config/postgre"
	configRedis "cryptobuzz-srv/config/redis"
	"cryptobuzz-srv/internal/httpserver"
	"cryptobuzz-srv/internal/metrics"
	"cryptobuzz-srv/pkg/coinmarketcap"
	"cryptobuzz-srv/pkg/cryptopanic"
	"cryptobuzz-srv/pkg/discord"

	"github.com/spf13/cobra"
)

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting cryptobuzz service...")

	// PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return err
	}
	defer func() {
		if err := postgre.Disconnect(postgresDB); err != nil {
			logger.Errorf(context.Background(), "%v", err)
		}
	}()
	logger.Infof(ctx, "PostgreSQL connected to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Redis (optional) - price snapshots and the event relay
	redisClient, err := configRedis.Connect(cfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return err
	}
	if redisClient != nil {
		defer configRedis.Disconnect(redisClient)
		logger.Infof(ctx, "Redis connected to %s:%d", cfg.Redis.Host, cfg.Redis.Port)
	} else {
		logger.Info(ctx, "Redis not configured, running single instance with in-memory fallback")
	}

	// Discord webhook (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookURL != "" {
		discordClient, err = discord.New(logger, cfg.Discord.WebhookURL)
		if err != nil {
			logger.Warnf(ctx, "Failed to initialize Discord webhook: %v", err)
			discordClient = nil
		} else {
			defer discordClient.Close()
			logger.Info(ctx, "Discord webhook initialized")
		}
	}

	if cfg.CoinMarketCap.APIKey == "" {
		logger.Warn(ctx, "COINMARKETCAP_API_KEY is empty, price requests will be rejected upstream")
	}
	cmcClient := coinmarketcap.New(logger, coinmarketcap.Config{
		BaseURL:           cfg.CoinMarketCap.BaseURL,
		APIKey:            cfg.CoinMarketCap.APIKey,
		Timeout:           cfg.CoinMarketCap.Timeout,
		RequestsPerMinute: cfg.CoinMarketCap.RequestsPerMinute,
	})
	cryptoPanicClient := cryptopanic.New(logger, cryptopanic.Config{
		BaseURL: cfg.CryptoPanic.BaseURL,
		APIKey:  cfg.CryptoPanic.APIKey,
		Timeout: cfg.CryptoPanic.Timeout,
		OnStateChange: func(_, to string) {
			metrics.CircuitBreakerState.WithLabelValues("cryptopanic").Set(metrics.BreakerStateValue(to))
		},
	})

	srv, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		Postgres: postgresDB,
		Redis:    redisClient,

		CoinMarketCap: cmcClient,
		CryptoPanic:   cryptoPanicClient,

		WSConfig:      cfg.WebSocket,
		Engine:        cfg.Engine,
		QuoteTTL:      cfg.CoinMarketCap.QuoteTTL,
		ListingTTL:    cfg.CoinMarketCap.ListingTTL,
		NewsCacheTTL:  cfg.CryptoPanic.CacheTTL,
		DemoUserEmail: cfg.DemoUser.Email,

		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return err
	}

	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
		return err
	}
	logger.Info(ctx, "Cleanup completed")
	return nil
}
