package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"dayplanner/internal/planning"
	"dayplanner/pkg/response"
)

// respondError translates domain errors into the standard envelope.
// Unknown entries and entries owned by another user are both 404.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planning.ErrEntryNotFound):
		response.NotFound(c, err)
	case errors.Is(err, planning.ErrTitleRequired),
		errors.Is(err, planning.ErrInvalidRecurrence),
		errors.Is(err, planning.ErrInvalidDropTarget):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
