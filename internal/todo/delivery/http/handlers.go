package http

import (
	"github.com/gin-gonic/gin"

	"dayplanner/internal/middleware"
	"dayplanner/pkg/response"
)

// Create godoc
// @Summary     Create a todo
// @Description Creates a todo in TODO status. A due date materializes its planner mirror.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Owner id"
// @Param       body      body   createReq true "Todo data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "todo.http.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List todos
// @Description Returns the owner's todos, newest first, with an optional status filter.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true  "Owner id"
// @Param       status    query  string false "Filter by status (TODO/IN_PROGRESS/DONE)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "todo.http.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get todo detail
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id        path   string true "Todo ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "todo.http.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a todo
// @Description Partial update. clear_due removes the due date (and the planner mirror).
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Owner id"
// @Param       id        path   string    true "Todo ID"
// @Param       body      body   updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "todo.http.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// ToggleStatus godoc
// @Summary     Toggle todo status
// @Description Advances TODO → IN_PROGRESS → DONE → TODO.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id        path   string true "Todo ID"
// @Success     200 {object} updateResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id}/toggle [POST]
func (h *handler) ToggleStatus(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ToggleStatus(ctx, middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "todo.http.ToggleStatus: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// MoveImportance godoc
// @Summary     Move a todo between importance lanes
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  true "Owner id"
// @Param       id        path   string  true "Todo ID"
// @Param       body      body   moveReq true "Target lane"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id}/importance [PUT]
func (h *handler) MoveImportance(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMoveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.MoveImportance(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "todo.http.MoveImportance: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a todo
// @Description Removes the todo and its planner mirror.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id        path   string true "Todo ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, middleware.UserID(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "todo.http.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
