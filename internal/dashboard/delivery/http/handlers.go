package http

import (
	"github.com/gin-gonic/gin"

	"dayplanner/internal/middleware"
	"dayplanner/pkg/response"
)

// Stats godoc
// @Summary     Dashboard statistics
// @Description Aggregated todo, planner and habit figures for the owner.
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Success     200 {object} statsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dashboard [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx, middleware.UserID(c))
	if err != nil {
		h.l.Errorf(ctx, "dashboard.http.Stats: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newStatsResp(output))
}
