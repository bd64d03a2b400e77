package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"dayplanner/pkg/response"
)

var (
	errIDRequired = errors.New("id is required")
	errInvalidDay = errors.New("date must be formatted as 2006-01-02")
)

// processCreateReq binds and validates the create habit request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
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

// processArchiveReq binds the archive flag body.
func (h *handler) processArchiveReq(c *gin.Context) (archiveReq, error) {
	var req archiveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processToggleReq binds the optional delta body + URI param. An empty
// body is fine; YES_NO habits never send one.
func (h *handler) processToggleReq(c *gin.Context) (toggleReq, error) {
	var req toggleReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, nil
}

// processTodayReq resolves the target day from the optional date query
// parameter, defaulting to now.
func (h *handler) processTodayReq(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), nil
	}
	day, err := time.Parse(response.DateFormat, raw)
	if err != nil {
		return time.Time{}, errInvalidDay
	}
	return day, nil
}
