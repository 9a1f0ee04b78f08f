package middleware

import (
	"cryptobuzz-srv/pkg/discord"
	"cryptobuzz-srv/pkg/log"
	"cryptobuzz-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 envelope and a Discord bug report.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Errorf(c.Request.Context(), "internal.middleware.Recovery: %v | %s %s", rec, c.Request.Method, c.Request.URL.Path)
				response.PanicError(c, rec, discordClient)
				c.Abort()
			}
		}()
		c.Next()
	}
}
