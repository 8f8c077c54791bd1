package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"taskhub/internal/errors"
	"taskhub/internal/model"
	"taskhub/internal/service"
)

// TaskHandler handles task endpoints nested under a project.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTaskRequest represents a task creation request. There is no
// status field: new tasks always start Pending.
type CreateTaskRequest struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Description *string   `json:"description" validate:"omitempty,max=255"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
}

// UpdateTaskRequest represents a task update request.
type UpdateTaskRequest struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Description *string   `json:"description" validate:"omitempty,max=255"`
	Status      string    `json:"status" validate:"required"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
}

// TaskResponse represents a task.
type TaskResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"dueDate"`
	ProjectID   uint      `json:"projectId"`
}

func taskNotFound() error {
	httpErr := errors.MapErrorToHTTP(errors.ErrTaskNotFound)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// List godoc
// @Summary List tasks of one of the caller's projects
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param projectId path int true "Project ID"
// @Success 200 {array} TaskResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{projectId}/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		// An unaddressable project has no tasks.
		return c.JSON(http.StatusOK, []TaskResponse{})
	}

	tasks, err := h.taskService.ListByProject(c.Request().Context(), projectID, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, toTaskResponse(task))
	}
	return c.JSON(http.StatusOK, responses)
}

// Get godoc
// @Summary Get a task through the ownership chain
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param projectId path int true "Project ID"
// @Param taskId path int true "Task ID"
// @Success 200 {object} TaskResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{projectId}/tasks/{taskId} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return taskNotFound()
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return taskNotFound()
	}

	task, err := h.taskService.Get(c.Request().Context(), taskID, projectID, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, toTaskResponse(*task))
}

// Create godoc
// @Summary Create a task in one of the caller's projects
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path int true "Project ID"
// @Param request body CreateTaskRequest true "Task data"
// @Success 201 {object} TaskResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{projectId}/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return projectNotFound()
	}

	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.Create(c.Request().Context(), service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}, projectID, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, toTaskResponse(*task))
}

// Update godoc
// @Summary Update a task through the ownership chain
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path int true "Project ID"
// @Param taskId path int true "Task ID"
// @Param request body UpdateTaskRequest true "Task data"
// @Success 200 {object} TaskResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{projectId}/tasks/{taskId} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return taskNotFound()
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return taskNotFound()
	}

	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.Update(c.Request().Context(), taskID, projectID, service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	}, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, toTaskResponse(*task))
}

// Complete godoc
// @Summary Mark a task completed
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param projectId path int true "Project ID"
// @Param taskId path int true "Task ID"
// @Success 200 {object} TaskResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{projectId}/tasks/{taskId}/complete [patch]
func (h *TaskHandler) Complete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return taskNotFound()
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return taskNotFound()
	}

	task, err := h.taskService.Complete(c.Request().Context(), taskID, projectID, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, toTaskResponse(*task))
}

// Delete godoc
// @Summary Delete a task through the ownership chain
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param projectId path int true "Project ID"
// @Param taskId path int true "Task ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{projectId}/tasks/{taskId} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return taskNotFound()
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return taskNotFound()
	}

	if err := h.taskService.Delete(c.Request().Context(), taskID, projectID, userID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Task deleted successfully"})
}

func toTaskResponse(task model.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		DueDate:     task.DueDate,
		ProjectID:   task.ProjectID,
	}
}
