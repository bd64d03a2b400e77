package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errIDRequired = errors.New("id is required")

// processNotebookReq binds the notebook body; withID also requires the
// URI param.
func (h *handler) processNotebookReq(c *gin.Context, withID bool) (notebookReq, error) {
	var req notebookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if withID {
		req.ID = c.Param("id")
		if req.ID == "" {
			return req, errIDRequired
		}
	}
	return req, nil
}

// processCreateNoteReq binds and validates the create note body.
func (h *handler) processCreateNoteReq(c *gin.Context) (createNoteReq, error) {
	var req createNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateNoteReq binds the update body + URI param.
func (h *handler) processUpdateNoteReq(c *gin.Context) (updateNoteReq, error) {
	var req updateNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, nil
}
