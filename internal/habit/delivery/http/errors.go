package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"dayplanner/internal/habit"
	"dayplanner/pkg/response"
)

// respondError translates domain errors into the standard envelope.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, habit.ErrHabitNotFound):
		response.NotFound(c, err)
	case errors.Is(err, habit.ErrTitleRequired),
		errors.Is(err, habit.ErrInvalidFrequency),
		errors.Is(err, habit.ErrInvalidWeekdays):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
