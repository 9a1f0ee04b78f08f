package http

import (
	"cryptobuzz-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	alerts := r.Group("/alerts", mw.Scope())
	{
		alerts.GET("", h.List)
		alerts.POST("", h.Create)
		alerts.GET("/history", h.ListFires)
		alerts.PUT("/recommended", h.ToggleRecommended)
		alerts.GET("/:id", h.Detail)
		alerts.PATCH("/:id", h.Update)
		alerts.POST("/:id/snooze", h.Snooze)
		alerts.DELETE("/:id", h.Delete)
	}
}
