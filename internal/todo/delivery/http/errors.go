package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"dayplanner/internal/todo"
	"dayplanner/pkg/response"
)

// respondError translates domain errors into the standard envelope.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, todo.ErrTodoNotFound):
		response.NotFound(c, err)
	case errors.Is(err, todo.ErrTitleRequired),
		errors.Is(err, todo.ErrInvalidImportance):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
