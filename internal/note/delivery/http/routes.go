package http

import (
	"github.com/gin-gonic/gin"

	"dayplanner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. The note
// domain spans two resources, so it takes the API root group and mounts
// both /notebooks and /notes.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	notebooks := rg.Group("/notebooks", mw.Auth(), mw.RateLimit())
	{
		notebooks.POST("", h.CreateNotebook)
		notebooks.GET("", h.ListNotebooks)
		notebooks.PUT("/:id", h.RenameNotebook)
		notebooks.DELETE("/:id", h.DeleteNotebook)
	}

	notes := rg.Group("/notes", mw.Auth(), mw.RateLimit())
	{
		notes.POST("", h.CreateNote)
		notes.GET("", h.ListNotes)
		notes.PUT("/:id", h.UpdateNote)
		notes.POST("/:id/pin", h.TogglePin)
		notes.DELETE("/:id", h.DeleteNote)
	}
}
