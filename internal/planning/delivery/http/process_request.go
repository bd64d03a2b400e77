package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errIDRequired = errors.New("id is required")

// processCreateReq binds and validates the create entry request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (*listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return nil, err
	}
	return &req, req.validate()
}

// processUpdateReq binds and validates the update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, req.validate()
}

// processRescheduleReq binds and validates the drop request.
func (h *handler) processRescheduleReq(c *gin.Context) (*rescheduleReq, error) {
	var req rescheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return nil, errIDRequired
	}
	return &req, req.validate()
}

// processSetTimesReq binds and validates the direct time edit.
func (h *handler) processSetTimesReq(c *gin.Context) (setTimesReq, error) {
	var req setTimesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, req.validate()
}
