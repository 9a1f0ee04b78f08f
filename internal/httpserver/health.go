package httpserver

import (
	"net/http"

	"cryptobuzz-srv/config/postgre"
	"cryptobuzz-srv/internal/stream"
	"cryptobuzz-srv/pkg/errors"
	"cryptobuzz-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "cryptobuzz-srv"
	serviceVersion = "1.0.0"

	errCodeUnavailable = 503
)

func (srv *HTTPServer) redisStatus(c *gin.Context) (string, error) {
	if srv.redis == nil {
		return "disabled", nil
	}
	if err := srv.redis.Ping(c.Request.Context()); err != nil {
		return "unavailable", err
	}
	return "connected", nil
}

func (srv *HTTPServer) hubStats(c *gin.Context) stream.HubStats {
	if srv.streamUC == nil {
		return stream.HubStats{}
	}
	return srv.streamUC.GetStats(c.Request.Context())
}

// healthCheck reports dependency status and hub counters.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := postgre.HealthCheck(ctx, srv.postgres); err != nil {
		srv.logger.Warnf(ctx, "internal.httpserver.healthCheck: %v", err)
		response.HttpError(c, errors.NewHTTPError(errCodeUnavailable, "PostgreSQL connection failed", http.StatusServiceUnavailable))
		return
	}

	redisState, err := srv.redisStatus(c)
	if err != nil {
		srv.logger.Warnf(ctx, "internal.httpserver.healthCheck: redis: %v", err)
	}

	stats := srv.hubStats(c)
	response.OK(c, gin.H{
		"status":             "healthy",
		"service":            serviceName,
		"version":            serviceVersion,
		"postgres":           "connected",
		"redis":              redisState,
		"active_connections": stats.ActiveConnections,
		"total_unique_users": stats.TotalUniqueUsers,
		"watched_symbols":    stats.WatchedSymbols,
	})
}

// readyCheck fails while a configured dependency is unreachable.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := postgre.HealthCheck(ctx, srv.postgres); err != nil {
		response.HttpError(c, errors.NewHTTPError(errCodeUnavailable, "PostgreSQL connection not available", http.StatusServiceUnavailable))
		return
	}
	redisState, err := srv.redisStatus(c)
	if err != nil {
		response.HttpError(c, errors.NewHTTPError(errCodeUnavailable, "Redis connection not available", http.StatusServiceUnavailable))
		return
	}

	response.OK(c, gin.H{
		"status":   "ready",
		"service":  serviceName,
		"version":  serviceVersion,
		"postgres": "connected",
		"redis":    redisState,
	})
}

func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
		"version": serviceVersion,
	})
}
