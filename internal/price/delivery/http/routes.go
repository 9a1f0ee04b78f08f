package http

import (
	"cryptobuzz-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the market data routes. They are public and need no scope.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, _ middleware.Middleware) {
	r.GET("/prices", h.GetPrices)
	r.GET("/coins/:symbol", h.GetCoin)
	r.GET("/top-coins", h.GetTopCoins)
}
