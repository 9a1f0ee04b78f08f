package http

import (
	"cryptobuzz-srv/internal/alert"
	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/pkg/errors"
	"cryptobuzz-srv/pkg/paginator"
	"cryptobuzz-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) scopeFrom(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, errors.NewUnauthorizedHTTPError()
	}
	return sc, nil
}

func (h *Handler) processCreateRequest(c *gin.Context) (createReq, model.Scope, error) {
	sc, err := h.scopeFrom(c)
	if err != nil {
		return createReq{}, model.Scope{}, err
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.alert.delivery.http.processCreateRequest: %v", err)
		return createReq{}, model.Scope{}, errWrongBody
	}
	return req, sc, nil
}

func (h *Handler) processListRequest(c *gin.Context) (listReq, model.Scope, error) {
	sc, err := h.scopeFrom(c)
	if err != nil {
		return listReq{}, model.Scope{}, err
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.alert.delivery.http.processListRequest: %v", err)
		return listReq{}, model.Scope{}, errWrongQuery
	}
	return req, sc, nil
}

func (h *Handler) processIDRequest(c *gin.Context) (string, model.Scope, error) {
	sc, err := h.scopeFrom(c)
	if err != nil {
		return "", model.Scope{}, err
	}
	return c.Param("id"), sc, nil
}

func (h *Handler) processUpdateRequest(c *gin.Context) (alert.UpdateInput, model.Scope, error) {
	id, sc, err := h.processIDRequest(c)
	if err != nil {
		return alert.UpdateInput{}, model.Scope{}, err
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.alert.delivery.http.processUpdateRequest: %v", err)
		return alert.UpdateInput{}, model.Scope{}, errWrongBody
	}
	return req.toInput(id), sc, nil
}

func (h *Handler) processSnoozeRequest(c *gin.Context) (alert.SnoozeInput, model.Scope, error) {
	id, sc, err := h.processIDRequest(c)
	if err != nil {
		return alert.SnoozeInput{}, model.Scope{}, err
	}

	var req snoozeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.alert.delivery.http.processSnoozeRequest: %v", err)
		return alert.SnoozeInput{}, model.Scope{}, errWrongBody
	}
	return alert.SnoozeInput{ID: id, Minutes: req.Minutes}, sc, nil
}

func (h *Handler) processToggleRecommendedRequest(c *gin.Context) (toggleRecommendedReq, model.Scope, error) {
	sc, err := h.scopeFrom(c)
	if err != nil {
		return toggleRecommendedReq{}, model.Scope{}, err
	}

	var req toggleRecommendedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.alert.delivery.http.processToggleRecommendedRequest: %v", err)
		return toggleRecommendedReq{}, model.Scope{}, errWrongBody
	}
	return req, sc, nil
}

func (h *Handler) processListFiresRequest(c *gin.Context) (paginator.PaginateQuery, model.Scope, error) {
	sc, err := h.scopeFrom(c)
	if err != nil {
		return paginator.PaginateQuery{}, model.Scope{}, err
	}

	var pq paginator.PaginateQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.alert.delivery.http.processListFiresRequest: %v", err)
		return paginator.PaginateQuery{}, model.Scope{}, errWrongQuery
	}
	pq.Adjust()
	return pq, sc, nil
}
