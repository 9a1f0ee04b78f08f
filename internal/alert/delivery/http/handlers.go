package http

import (
	"cryptobuzz-srv/internal/alert"
	"cryptobuzz-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	a, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.Create: %v", err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.Created(c, newAlertResp(a))
}

// List returns the caller's alerts, newest first. ?type accepts a comma separated list.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	alerts, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.List: %v", err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, newAlertsResp(alerts))
}

func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	a, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.Detail: %v", err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, newAlertResp(a))
}

// Update toggles active and sets or clears the snooze.
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	ip, sc, err := h.processUpdateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	a, err := h.uc.Update(ctx, sc, ip)
	if err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.Update: %v", err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, newAlertResp(a))
}

func (h *Handler) Snooze(c *gin.Context) {
	ctx := c.Request.Context()

	ip, sc, err := h.processSnoozeRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	a, err := h.uc.Snooze(ctx, sc, ip)
	if err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.Snooze: %v", err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, newAlertResp(a))
}

func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.Delete: %v", err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, nil)
}

func (h *Handler) ListFires(c *gin.Context) {
	ctx := c.Request.Context()

	pq, sc, err := h.processListFiresRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListFires(ctx, sc, alert.ListFiresInput{PaginateQuery: pq})
	if err != nil {
		h.l.Errorf(ctx, "internal.alert.delivery.http.ListFires: %v", err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, newListFiresResp(o))
}

func (h *Handler) ToggleRecommended(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processToggleRecommendedRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	a, err := h.uc.ToggleRecommended(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.ToggleRecommended: %v", err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, newAlertResp(a))
}
