package http

import (
	"context"

	"cryptobuzz-srv/internal/stream"
	"cryptobuzz-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// HandleWebSocket upgrades the request and hands the socket to the hub.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	sc, ok := h.processUpgradeRequest(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.l.Warnf(c.Request.Context(), "internal.stream.delivery.http.HandleWebSocket.Upgrade: %v", err)
		return
	}

	// The request context ends with this handler; the connection outlives it.
	if err := h.uc.Register(context.WithoutCancel(c.Request.Context()), stream.ConnectionInput{
		UserID: sc.UserID,
		Conn:   conn,
	}); err != nil {
		h.l.Errorf(c.Request.Context(), "internal.stream.delivery.http.HandleWebSocket.Register: %v", err)
		_ = conn.Close()
		return
	}
}
