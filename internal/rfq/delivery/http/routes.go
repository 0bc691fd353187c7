package http

import (
	"github.com/gin-gonic/gin"

	"rfq-agent/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Generation and analysis are rate limited; examples are static.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("", mw.RateLimit(), h.Submit)
	rg.POST("/analyze", mw.RateLimit(), h.Analyze)
	rg.GET("/examples", h.Examples)
}
