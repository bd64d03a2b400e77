package http

import (
	"github.com/gin-gonic/gin"

	"dayplanner/internal/middleware"
	"dayplanner/pkg/response"
)

// Create godoc
// @Summary     Create planner entries
// @Description Creates one entry, or a daily/weekly series expanded from the base occurrence.
// @Tags        Planning
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Owner id"
// @Param       body      body   createReq true "Entry data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planning/entries [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "planning.http.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List planner entries
// @Description Returns entries whose start falls inside the [from, to) window.
// @Tags        Planning
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true  "Owner id"
// @Param       from      query  string false "Window start (RFC3339)"
// @Param       to        query  string false "Window end (RFC3339)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planning/entries [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "planning.http.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get planner entry detail
// @Tags        Planning
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id        path   string true "Entry ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planning/entries/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "planning.http.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update planner entry details
// @Description Edits title, description and importance. Times and completion are untouched.
// @Tags        Planning
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Owner id"
// @Param       id        path   string    true "Entry ID"
// @Param       body      body   updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planning/entries/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateDetails(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "planning.http.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Reschedule godoc
// @Summary     Move a planner entry by drag and drop
// @Description Resolves a week-grid drop target against the displayed week. Duration is preserved.
// @Tags        Planning
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string        true "Owner id"
// @Param       id        path   string        true "Entry ID"
// @Param       body      body   rescheduleReq true "Drop target"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planning/entries/{id}/reschedule [POST]
func (h *handler) Reschedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRescheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Reschedule(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "planning.http.Reschedule: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// SetTimes godoc
// @Summary     Set planner entry times directly
// @Description Sets new start/end; an end at or before the start snaps to start + 1h.
// @Tags        Planning
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true "Owner id"
// @Param       id        path   string      true "Entry ID"
// @Param       body      body   setTimesReq true "New times"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planning/entries/{id}/times [PUT]
func (h *handler) SetTimes(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetTimesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetTimes(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "planning.http.SetTimes: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a planner entry
// @Tags        Planning
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id        path   string true "Entry ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planning/entries/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, middleware.UserID(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "planning.http.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
