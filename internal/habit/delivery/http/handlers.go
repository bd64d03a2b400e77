package http

import (
	"github.com/gin-gonic/gin"

	"dayplanner/internal/middleware"
	"dayplanner/pkg/response"
)

// Create godoc
// @Summary     Create a habit
// @Tags        Habit
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Owner id"
// @Param       body      body   createReq true "Habit data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/habits [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "habit.http.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List habits
// @Tags        Habit
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true  "Owner id"
// @Param       archived  query  bool   false "Include archived habits"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/habits [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	includeArchived := c.Query("archived") == "true"
	output, err := h.uc.List(ctx, middleware.UserID(c), includeArchived)
	if err != nil {
		h.l.Errorf(ctx, "habit.http.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get habit detail
// @Tags        Habit
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id        path   string true "Habit ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/habits/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "habit.http.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a habit
// @Tags        Habit
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Owner id"
// @Param       id        path   string    true "Habit ID"
// @Param       body      body   updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/habits/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "habit.http.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Archive godoc
// @Summary     Archive or restore a habit
// @Tags        Habit
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true "Owner id"
// @Param       id        path   string     true "Habit ID"
// @Param       body      body   archiveReq true "Archive flag"
// @Success     200 {object} updateResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/habits/{id}/archive [PUT]
func (h *handler) Archive(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processArchiveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Archive(ctx, middleware.UserID(c), c.Param("id"), req.Archived)
	if err != nil {
		h.l.Errorf(ctx, "habit.http.Archive: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Today godoc
// @Summary     List habits due on a day
// @Description Defaults to today; pass date=YYYY-MM-DD for another day.
// @Tags        Habit
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true  "Owner id"
// @Param       date      query  string false "Target day (2006-01-02)"
// @Success     200 {object} todayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/habits/today [GET]
func (h *handler) Today(c *gin.Context) {
	ctx := c.Request.Context()

	day, err := h.processTodayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListForDay(ctx, middleware.UserID(c), day)
	if err != nil {
		h.l.Errorf(ctx, "habit.http.Today: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTodayResp(output))
}

// Toggle godoc
// @Summary     Toggle today's habit log
// @Description YES_NO flips done; COUNTER adjusts the value by delta (default +1).
// @Tags        Habit
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Owner id"
// @Param       id        path   string    true "Habit ID"
// @Param       body      body   toggleReq false "Counter delta"
// @Success     200 {object} toggleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/habits/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ToggleToday(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "habit.http.Toggle: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// Delete godoc
// @Summary     Delete a habit and its logs
// @Tags        Habit
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id        path   string true "Habit ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/habits/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, middleware.UserID(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "habit.http.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
