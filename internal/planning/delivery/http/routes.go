package http

import (
	"github.com/gin-gonic/gin"

	"dayplanner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. All routes
// run behind identity resolution and rate limiting.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	entries := rg.Group("/entries", mw.Auth(), mw.RateLimit())
	{
		entries.POST("", h.Create)
		entries.GET("", h.List)
		entries.GET("/:id", h.Detail)
		entries.PUT("/:id", h.Update)
		entries.POST("/:id/reschedule", h.Reschedule)
		entries.PUT("/:id/times", h.SetTimes)
		entries.DELETE("/:id", h.Delete)
	}
}
