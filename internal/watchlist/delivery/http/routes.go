package http

import (
	"cryptobuzz-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	watch := r.Group("/watchlist", mw.Scope())
	{
		watch.GET("", h.List)
		watch.POST("", h.Create)
		watch.POST("/seed", h.Seed)
		watch.DELETE("/:id", h.Delete)
	}
}
