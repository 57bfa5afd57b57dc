package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-task-tracker/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns every live task.
// @Tags        Tasks
// @Produce     json
// @Success     200 {array}  taskResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.JSON(c, http.StatusOK, h.newListResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a task. Priority and estimated time are suggested by the completion API when it is reachable.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body     createReq true "Task title"
// @Success     201  {object} taskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.JSON(c, http.StatusCreated, newTaskResp(output.Task))
}

// Detail godoc
// @Summary     Get a task
// @Description Returns a single task by its ID.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.JSON(c, http.StatusOK, newTaskResp(output.Task))
}

// Update godoc
// @Summary     Replace a task
// @Description Replaces every field of a task. Omitted optional fields are cleared. A body id that differs from the path id is rejected.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Full task"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.JSON(c, http.StatusOK, newTaskResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Tasks
// @Param       id path string true "Task ID"
// @Success     204 "No Content"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.NoContent(c)
}
