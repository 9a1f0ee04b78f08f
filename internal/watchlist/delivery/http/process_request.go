package http

import (
	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/pkg/errors"
	"cryptobuzz-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, errors.NewUnauthorizedHTTPError()
	}
	return sc, nil
}

func (h *Handler) processCreateRequest(c *gin.Context) (createReq, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return createReq{}, model.Scope{}, err
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.watchlist.delivery.http.processCreateRequest: %v", err)
		return createReq{}, model.Scope{}, errWrongBody
	}
	return req, sc, nil
}
