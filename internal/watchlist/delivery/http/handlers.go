package http

import (
	"cryptobuzz-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	watches, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.watchlist.delivery.http.List: %v", err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, newWatchesResp(watches))
}

func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	w, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.watchlist.delivery.http.Create: %v", err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.Created(c, newWatchResp(w))
}

func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "internal.watchlist.delivery.http.Delete: %v", err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, nil)
}

// Seed fills the demo account with popular coins and a first batch of news.
func (h *Handler) Seed(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Seed(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.watchlist.delivery.http.Seed: %v", err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, seedResp{Watchlist: newWatchesResp(o.Watches), NewsStored: o.NewsStored})
}
