package http

import (
	"cryptobuzz-srv/internal/price"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processGetPricesRequest(c *gin.Context) (getPricesReq, error) {
	var req getPricesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.price.delivery.http.processGetPricesRequest: %v", err)
		return getPricesReq{}, errWrongQuery
	}
	return req, nil
}

func (h *Handler) processGetCoinRequest(c *gin.Context) (string, error) {
	sym, ok := price.NormalizeSymbol(c.Param("symbol"))
	if !ok {
		return "", price.ErrInvalidSymbol
	}
	return sym, nil
}

func (h *Handler) processGetTopCoinsRequest(c *gin.Context) (getTopCoinsReq, error) {
	var req getTopCoinsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.price.delivery.http.processGetTopCoinsRequest: %v", err)
		return getTopCoinsReq{}, errWrongQuery
	}
	if err := req.validate(); err != nil {
		return getTopCoinsReq{}, err
	}
	return req, nil
}
