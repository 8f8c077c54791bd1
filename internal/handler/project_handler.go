package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"taskhub/internal/errors"
	"taskhub/internal/service"
)

// ProjectHandler handles project endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CreateProjectRequest represents a project creation request.
type CreateProjectRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

// UpdateProjectRequest represents a project update request.
type UpdateProjectRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

// ProjectResponse represents a project with its live progress counters.
type ProjectResponse struct {
	ID                 uint    `json:"id"`
	Title              string  `json:"title"`
	Description        *string `json:"description"`
	UserID             uint    `json:"userId"`
	TotalTasks         int64   `json:"totalTasks"`
	CompletedTasks     int64   `json:"completedTasks"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

// ProgressResponse represents the dedicated progress view of a project.
type ProgressResponse struct {
	ProjectID          uint    `json:"projectId"`
	ProjectTitle       string  `json:"projectTitle"`
	TotalTasks         int64   `json:"totalTasks"`
	CompletedTasks     int64   `json:"completedTasks"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

// parseIDParam parses a numeric path parameter. A value that is not a
// positive integer cannot name an existing row.
func parseIDParam(c echo.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func projectNotFound() error {
	httpErr := errors.MapErrorToHTTP(errors.ErrProjectNotFound)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// List godoc
// @Summary List the caller's projects with progress
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ProjectResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	summaries, err := h.projectService.List(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	responses := make([]ProjectResponse, 0, len(summaries))
	for _, summary := range summaries {
		responses = append(responses, toProjectResponse(summary))
	}
	return c.JSON(http.StatusOK, responses)
}

// Get godoc
// @Summary Get one of the caller's projects
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectId path int true "Project ID"
// @Success 200 {object} ProjectResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{projectId} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c, "projectId")
	if !ok {
		return projectNotFound()
	}

	summary, err := h.projectService.Get(c.Request().Context(), id, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, toProjectResponse(*summary))
}

// Create godoc
// @Summary Create a project owned by the caller
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProjectRequest true "Project data"
// @Success 201 {object} ProjectResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	summary, err := h.projectService.Create(c.Request().Context(), req.Title, req.Description, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, toProjectResponse(*summary))
}

// Update godoc
// @Summary Update one of the caller's projects
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path int true "Project ID"
// @Param request body UpdateProjectRequest true "Project data"
// @Success 200 {object} ProjectResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{projectId} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c, "projectId")
	if !ok {
		return projectNotFound()
	}

	var req UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	summary, err := h.projectService.Update(c.Request().Context(), id, req.Title, req.Description, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, toProjectResponse(*summary))
}

// Delete godoc
// @Summary Delete one of the caller's projects and its tasks
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectId path int true "Project ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{projectId} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c, "projectId")
	if !ok {
		return projectNotFound()
	}

	if err := h.projectService.Delete(c.Request().Context(), id, userID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Project deleted successfully"})
}

// Progress godoc
// @Summary Get live progress for one of the caller's projects
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectId path int true "Project ID"
// @Success 200 {object} ProgressResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{projectId}/progress [get]
func (h *ProjectHandler) Progress(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c, "projectId")
	if !ok {
		return projectNotFound()
	}

	progress, err := h.projectService.Progress(c.Request().Context(), id, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ProgressResponse{
		ProjectID:          progress.ProjectID,
		ProjectTitle:       progress.ProjectTitle,
		TotalTasks:         progress.TotalTasks,
		CompletedTasks:     progress.CompletedTasks,
		ProgressPercentage: progress.ProgressPercentage,
	})
}

func toProjectResponse(summary service.ProjectSummary) ProjectResponse {
	return ProjectResponse{
		ID:                 summary.Project.ID,
		Title:              summary.Project.Title,
		Description:        summary.Project.Description,
		UserID:             summary.Project.UserID,
		TotalTasks:         summary.TotalTasks,
		CompletedTasks:     summary.CompletedTasks,
		ProgressPercentage: summary.ProgressPercentage,
	}
}
