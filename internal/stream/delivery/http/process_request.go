package http

import (
	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processUpgradeRequest(c *gin.Context) (model.Scope, bool) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok || sc.IsZero() {
		h.l.Warnf(c.Request.Context(), "internal.stream.delivery.http.processUpgradeRequest: missing scope")
		return model.Scope{}, false
	}
	return sc, true
}
