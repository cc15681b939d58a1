package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bucky/internal/errors"
	"bucky/internal/model"
	"bucky/internal/service"
)

// TaskHandler handles task endpoints nested under a bucket list.
type TaskHandler struct {
	tasks service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(tasks service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// TaskRequest is the task payload schema. Only the description is accepted
// on input.
type TaskRequest struct {
	Description string `json:"description" validate:"required"`
}

// List godoc
// @Summary List tasks of a bucket list
// @Tags tasks
// @Produce json
// @Security BasicAuth
// @Param id path int true "Bucket list ID"
// @Success 200 {object} map[string][]model.Task
// @Failure 404 {object} errors.ErrorResponse
// @Router /bucketlists/{id}/tasks/ [get]
func (h *TaskHandler) List(c echo.Context) error {
	identity, err := requestIdentity(c)
	if err != nil {
		return err
	}
	bucketListID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	tasks, err := h.tasks.List(c.Request().Context(), identity.UserID, bucketListID)
	if err != nil {
		return respondError(c, err, "")
	}

	return c.JSON(http.StatusOK, map[string][]model.Task{
		"tasks": tasks,
	})
}

// Create godoc
// @Summary Create a task in a bucket list
// @Tags tasks
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path int true "Bucket list ID"
// @Param request body TaskRequest true "Task payload"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 422 {object} map[string][]string
// @Router /bucketlists/{id}/tasks/ [post]
func (h *TaskHandler) Create(c echo.Context) error {
	identity, err := requestIdentity(c)
	if err != nil {
		return err
	}
	bucketListID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req TaskRequest
	if ok, err := decodePayload(c, &req); !ok {
		return err
	}

	task, err := h.tasks.Create(c.Request().Context(), identity.UserID, bucketListID, req.Description)
	if err != nil {
		return respondError(c, err, "Failed to create")
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Task created",
		"task":    task,
	})
}

// Update godoc
// @Summary Change a task's description
// @Tags tasks
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path int true "Bucket list ID"
// @Param task_id path int true "Task ID"
// @Param request body TaskRequest true "Task payload"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 422 {object} map[string][]string
// @Router /bucketlists/{id}/tasks/{task_id} [patch]
func (h *TaskHandler) Update(c echo.Context) error {
	identity, err := requestIdentity(c)
	if err != nil {
		return err
	}
	bucketListID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	taskID, err := pathID(c, "task_id")
	if err != nil {
		return err
	}

	var req TaskRequest
	if ok, err := decodePayload(c, &req); !ok {
		return err
	}

	task, err := h.tasks.Update(c.Request().Context(), identity.UserID, bucketListID, taskID, req.Description)
	if err != nil {
		return respondError(c, err, "Failed to patch")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Task modified",
		"task":    task,
	})
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security BasicAuth
// @Param id path int true "Bucket list ID"
// @Param task_id path int true "Task ID"
// @Success 200 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bucketlists/{id}/tasks/{task_id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	identity, err := requestIdentity(c)
	if err != nil {
		return err
	}
	bucketListID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	taskID, err := pathID(c, "task_id")
	if err != nil {
		return err
	}

	if err := h.tasks.Delete(c.Request().Context(), identity.UserID, bucketListID, taskID); err != nil {
		return respondError(c, err, "Failed to delete")
	}

	return c.JSON(http.StatusOK, errors.ErrorResponse{
		Message: "Task deleted",
	})
}
