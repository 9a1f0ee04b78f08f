package httpserver

import (
	"context"
	"fmt"

	alertHTTP "cryptobuzz-srv/internal/alert/delivery/http"
	alertJob "cryptobuzz-srv/internal/alert/delivery/job"
	alertRepo "cryptobuzz-srv/internal/alert/repository/postgre"
	alertUC "cryptobuzz-srv/internal/alert/usecase"
	"cryptobuzz-srv/internal/middleware"
	newsHTTP "cryptobuzz-srv/internal/news/delivery/http"
	newsJob "cryptobuzz-srv/internal/news/delivery/job"
	newsRepo "cryptobuzz-srv/internal/news/repository/postgre"
	newsUC "cryptobuzz-srv/internal/news/usecase"
	priceHTTP "cryptobuzz-srv/internal/price/delivery/http"
	priceRepository "cryptobuzz-srv/internal/price/repository"
	priceRedis "cryptobuzz-srv/internal/price/repository/redis"
	priceUC "cryptobuzz-srv/internal/price/usecase"
	"cryptobuzz-srv/internal/stream"
	streamHTTP "cryptobuzz-srv/internal/stream/delivery/http"
	streamJob "cryptobuzz-srv/internal/stream/delivery/job"
	streamRedis "cryptobuzz-srv/internal/stream/delivery/redis"
	streamUC "cryptobuzz-srv/internal/stream/usecase"
	userRepo "cryptobuzz-srv/internal/user/repository/postgre"
	userUC "cryptobuzz-srv/internal/user/usecase"
	watchlistHTTP "cryptobuzz-srv/internal/watchlist/delivery/http"
	watchlistRepo "cryptobuzz-srv/internal/watchlist/repository/postgre"
	watchlistUC "cryptobuzz-srv/internal/watchlist/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Api = "/api/v1"

// mapHandlers builds every domain, registers its routes and prepares the background jobs.
func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	srv.gin.Use(middleware.Recovery(srv.logger, srv.discord))
	srv.gin.Use(middleware.CORS(middleware.CORSConfigFor(srv.environment, srv.wsConfig.AllowedOrigins)))

	// Repositories
	alertRepository := alertRepo.New(srv.logger, srv.postgres)
	newsRepository := newsRepo.New(srv.logger, srv.postgres)
	userRepository := userRepo.New(srv.logger, srv.postgres)
	watchlistRepository := watchlistRepo.New(srv.logger, srv.postgres)

	var snapshots priceRepository.SnapshotRepository
	var relay stream.Relay
	if srv.redis != nil {
		snapshots = priceRedis.New(srv.logger, srv.redis)
		relay = streamRedis.NewRelay(srv.redis)
	}

	// Usecases
	priceUsecase := priceUC.New(srv.logger, srv.cmc, snapshots, priceUC.Config{
		QuoteTTL:   srv.quoteTTL,
		ListingTTL: srv.listingTTL,
	})
	newsUsecase := newsUC.New(srv.logger, srv.cryptoPanic, newsRepository, newsUC.Config{
		CacheTTL: srv.newsCacheTTL,
	})
	srv.streamUC = streamUC.New(srv.logger, priceUsecase, relay, streamUC.Config{
		PingInterval:   srv.wsConfig.PingInterval,
		PongWait:       srv.wsConfig.PongWait,
		WriteWait:      srv.wsConfig.WriteWait,
		MaxMessageSize: srv.wsConfig.MaxMessageSize,
		MaxConnections: srv.wsConfig.MaxConnections,
		DefaultSymbols: srv.wsConfig.DefaultSymbols,
	})
	alertUsecase := alertUC.New(srv.logger, alertRepository, priceUsecase, srv.streamUC, newsUsecase, srv.discord)
	watchlistUsecase := watchlistUC.New(srv.logger, watchlistRepository, srv.streamUC, newsUsecase)
	userUsecase := userUC.New(srv.logger, userRepository)

	if srv.redis != nil {
		srv.wsSubscriber = streamRedis.New(srv.redis, srv.streamUC, srv.logger)
	}

	// Demo identity used when a request names no user
	demoUser, err := userUsecase.EnsureDefault(ctx, srv.demoUserEmail)
	if err != nil {
		return fmt.Errorf("ensure demo user: %w", err)
	}
	srv.logger.Infof(ctx, "internal.httpserver.mapHandlers: demo user %s (%s)", demoUser.Email, demoUser.ID)

	symbols, err := watchlistUsecase.Symbols(ctx)
	if err != nil {
		srv.logger.Warnf(ctx, "internal.httpserver.mapHandlers: load watched symbols: %v", err)
	}
	for _, s := range symbols {
		srv.streamUC.AddWatchedSymbol(ctx, s)
	}

	mw := middleware.New(srv.logger, demoUser.Scope())
	srv.gin.Use(mw.Logger())

	// Health and metrics (no scope)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Handlers
	streamHandler := streamHTTP.New(srv.logger, srv.streamUC, streamHTTP.WSConfig{
		ReadBufferSize:  srv.wsConfig.ReadBufferSize,
		WriteBufferSize: srv.wsConfig.WriteBufferSize,
		AllowedOrigins:  srv.wsConfig.AllowedOrigins,
	}, srv.environment)
	streamHandler.RegisterRoutes(srv.gin, mw)

	api := srv.gin.Group(Api)
	priceHTTP.New(srv.logger, priceUsecase, srv.discord).RegisterRoutes(api, mw)
	newsHTTP.New(srv.logger, newsUsecase, srv.discord).RegisterRoutes(api, mw)
	alertHTTP.New(srv.logger, alertUsecase, srv.discord).RegisterRoutes(api, mw)
	watchlistHTTP.New(srv.logger, watchlistUsecase, srv.discord).RegisterRoutes(api, mw)

	// Background jobs
	alertEngine, err := alertJob.New(srv.logger, alertUsecase, srv.engine.AlertInterval)
	if err != nil {
		return fmt.Errorf("alert job: %w", err)
	}
	priceStream, err := streamJob.New(srv.logger, srv.streamUC, srv.engine.StreamInterval)
	if err != nil {
		return fmt.Errorf("stream job: %w", err)
	}
	newsIngest, err := newsJob.New(srv.logger, newsUsecase, srv.engine.NewsInterval)
	if err != nil {
		return fmt.Errorf("news job: %w", err)
	}
	srv.jobs = append(srv.jobs, alertEngine, priceStream, newsIngest)

	return nil
}
