package http

import (
	"cryptobuzz-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, _ middleware.Middleware) {
	r.GET("/news", h.List)
}
