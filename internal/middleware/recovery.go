package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"rfq-agent/pkg/response"
)

// Recovery turns a handler panic into a 500 envelope and logs the cause.
func (mw Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err := fmt.Errorf("panic: %v", recovered)
		mw.l.Errorf(c.Request.Context(), "middleware.Recovery: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		response.InternalError(c, err)
		c.Abort()
	})
}
