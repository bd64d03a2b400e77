package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"dayplanner/internal/note"
	"dayplanner/pkg/response"
)

// respondError translates domain errors into the standard envelope.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, note.ErrNotebookNotFound),
		errors.Is(err, note.ErrNoteNotFound):
		response.NotFound(c, err)
	case errors.Is(err, note.ErrNameRequired),
		errors.Is(err, note.ErrTitleRequired):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
