package http

import (
	"github.com/gin-gonic/gin"

	"dayplanner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	todos := rg.Group("", mw.Auth(), mw.RateLimit())
	{
		todos.POST("", h.Create)
		todos.GET("", h.List)
		todos.GET("/:id", h.Detail)
		todos.PUT("/:id", h.Update)
		todos.POST("/:id/toggle", h.ToggleStatus)
		todos.PUT("/:id/importance", h.MoveImportance)
		todos.DELETE("/:id", h.Delete)
	}
}
