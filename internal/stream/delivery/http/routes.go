package http

import (
	"cryptobuzz-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the websocket endpoint. Browsers cannot set headers on the upgrade,
// so the scope middleware falls back to the demo identity.
func (h *Handler) RegisterRoutes(r gin.IRouter, mw middleware.Middleware) {
	r.GET("/ws", mw.Scope(), h.HandleWebSocket)
}
