package http

import (
	"cryptobuzz-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetPrices returns snapshots for the comma separated symbols query, or the popular set when empty.
func (h *Handler) GetPrices(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetPricesRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetPrices(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.price.delivery.http.GetPrices: %v", err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, h.newPricesResp(o))
}

func (h *Handler) GetCoin(c *gin.Context) {
	ctx := c.Request.Context()

	sym, err := h.processGetCoinRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	s, err := h.uc.GetPrice(ctx, sym)
	if err != nil {
		h.l.Warnf(ctx, "internal.price.delivery.http.GetCoin: %v", err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, newCoinResp(s))
}

func (h *Handler) GetTopCoins(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetTopCoinsRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	coins, err := h.uc.GetTopCoins(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.price.delivery.http.GetTopCoins: %v", err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, h.newTopCoinsResp(coins))
}
