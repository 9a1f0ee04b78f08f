package http

import (
	"cryptobuzz-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// List returns stored news, newest first, optionally narrowed to one currency.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	items, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.news.delivery.http.List: %v", err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}

	response.OK(c, h.newListResp(items))
}
