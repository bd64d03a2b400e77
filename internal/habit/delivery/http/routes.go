package http

import (
	"github.com/gin-gonic/gin"

	"dayplanner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// The static /today route is registered before the :id routes so gin
// resolves it first.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	habits := rg.Group("", mw.Auth(), mw.RateLimit())
	{
		habits.POST("", h.Create)
		habits.GET("", h.List)
		habits.GET("/today", h.Today)
		habits.GET("/:id", h.Detail)
		habits.PUT("/:id", h.Update)
		habits.PUT("/:id/archive", h.Archive)
		habits.POST("/:id/toggle", h.Toggle)
		habits.DELETE("/:id", h.Delete)
	}
}
