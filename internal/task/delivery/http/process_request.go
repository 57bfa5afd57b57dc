package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "ai-task-tracker/pkg/errors"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "task.delivery.http.processCreateReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

// processUpdateReq binds and validates the update task request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "task.delivery.http.processUpdateReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	req.ID = c.Param("id")
	return req, nil
}
