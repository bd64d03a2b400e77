package http

import (
	"github.com/gin-gonic/gin"

	"dayplanner/internal/middleware"
	"dayplanner/internal/note"
	"dayplanner/pkg/response"
)

// CreateNotebook godoc
// @Summary     Create a notebook
// @Tags        Note
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true "Owner id"
// @Param       body      body   notebookReq true "Notebook data"
// @Success     200 {object} notebookOutResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notebooks [POST]
func (h *handler) CreateNotebook(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processNotebookReq(c, false)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateNotebook(ctx, note.CreateNotebookInput{
		OwnerID: middleware.UserID(c),
		Name:    req.Name,
	})
	if err != nil {
		h.l.Errorf(ctx, "note.http.CreateNotebook: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newNotebookResp(output))
}

// ListNotebooks godoc
// @Summary     List notebooks
// @Tags        Note
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Success     200 {object} listNotebooksResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notebooks [GET]
func (h *handler) ListNotebooks(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListNotebooks(ctx, middleware.UserID(c))
	if err != nil {
		h.l.Errorf(ctx, "note.http.ListNotebooks: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListNotebooksResp(output))
}

// RenameNotebook godoc
// @Summary     Rename a notebook
// @Tags        Note
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true "Owner id"
// @Param       id        path   string      true "Notebook ID"
// @Param       body      body   notebookReq true "New name"
// @Success     200 {object} notebookOutResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notebooks/{id} [PUT]
func (h *handler) RenameNotebook(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processNotebookReq(c, true)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.RenameNotebook(ctx, note.RenameNotebookInput{
		OwnerID: middleware.UserID(c),
		ID:      req.ID,
		Name:    req.Name,
	})
	if err != nil {
		h.l.Errorf(ctx, "note.http.RenameNotebook: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newNotebookResp(output))
}

// DeleteNotebook godoc
// @Summary     Delete a notebook
// @Description The notebook's notes survive as loose notes.
// @Tags        Note
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id        path   string true "Notebook ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notebooks/{id} [DELETE]
func (h *handler) DeleteNotebook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteNotebook(ctx, middleware.UserID(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "note.http.DeleteNotebook: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// CreateNote godoc
// @Summary     Create a note
// @Tags        Note
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string        true "Owner id"
// @Param       body      body   createNoteReq true "Note data"
// @Success     200 {object} noteOutResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes [POST]
func (h *handler) CreateNote(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateNoteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateNote(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "note.http.CreateNote: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newNoteResp(output))
}

// ListNotes godoc
// @Summary     List notes
// @Description Pinned notes sort first. notebook_id narrows to one notebook.
// @Tags        Note
// @Accept      json
// @Produce     json
// @Param       X-User-ID   header string true  "Owner id"
// @Param       notebook_id query  string false "Filter by notebook"
// @Success     200 {object} listNotesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes [GET]
func (h *handler) ListNotes(c *gin.Context) {
	ctx := c.Request.Context()

	input := note.ListNotesInput{OwnerID: middleware.UserID(c)}
	if nbID := c.Query("notebook_id"); nbID != "" {
		input.NotebookID = &nbID
	}

	output, err := h.uc.ListNotes(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "note.http.ListNotes: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListNotesResp(output))
}

// UpdateNote godoc
// @Summary     Update a note
// @Description Partial update. detach_notebook turns the note into a loose note.
// @Tags        Note
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string        true "Owner id"
// @Param       id        path   string        true "Note ID"
// @Param       body      body   updateNoteReq true "Fields to update"
// @Success     200 {object} noteOutResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes/{id} [PUT]
func (h *handler) UpdateNote(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateNoteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateNote(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "note.http.UpdateNote: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newNoteResp(output))
}

// TogglePin godoc
// @Summary     Toggle a note's pinned flag
// @Tags        Note
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id        path   string true "Note ID"
// @Success     200 {object} noteOutResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes/{id}/pin [POST]
func (h *handler) TogglePin(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.TogglePin(ctx, middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "note.http.TogglePin: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newNoteResp(output))
}

// DeleteNote godoc
// @Summary     Delete a note
// @Tags        Note
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id        path   string true "Note ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes/{id} [DELETE]
func (h *handler) DeleteNote(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteNote(ctx, middleware.UserID(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "note.http.DeleteNote: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
