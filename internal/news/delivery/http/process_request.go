package http

import "github.com/gin-gonic/gin"

func (h *Handler) processListRequest(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.news.delivery.http.processListRequest: %v", err)
		return listReq{}, errWrongQuery
	}
	return req, nil
}
