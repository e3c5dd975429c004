package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobhub/internal/service"
)

// SavedJobHandler serves the signed-in user's bookmarks.
type SavedJobHandler struct {
	saved service.SavedJobService
}

// NewSavedJobHandler creates a new saved job handler.
func NewSavedJobHandler(saved service.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{saved: saved}
}

// SaveJobRequest represents a save request.
type SaveJobRequest struct {
	JobID uint `json:"jobId" validate:"required"`
}

// ListSavedJobs godoc
// @Summary List saved jobs
// @Tags saved-jobs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} JobPage
// @Failure 401 {object} errors.ErrorResponse
// @Security SessionCookie
// @Router /saved-jobs [get]
func (h *SavedJobHandler) ListSavedJobs(c echo.Context) error {
	p, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	page, err := h.saved.List(c.Request().Context(), p.UserID, pagination(c))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, page)
}

// SaveJob godoc
// @Summary Save a job
// @Tags saved-jobs
// @Accept json
// @Produce json
// @Param request body SaveJobRequest true "Job to save"
// @Success 201 {object} model.SavedJob
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security SessionCookie
// @Router /saved-jobs [post]
func (h *SavedJobHandler) SaveJob(c echo.Context) error {
	p, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req SaveJobRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("Job ID is required")
	}

	if err := c.Validate(&req); err != nil {
		return invalid("Job ID is required", err)
	}

	saved, err := h.saved.Save(c.Request().Context(), p.UserID, req.JobID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, saved)
}

// UnsaveJob godoc
// @Summary Unsave a job
// @Description Removing a job that is not saved still succeeds.
// @Tags saved-jobs
// @Param id path int true "Job ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security SessionCookie
// @Router /saved-jobs/{id} [delete]
func (h *SavedJobHandler) UnsaveJob(c echo.Context) error {
	p, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	jobID, ok := pathID(c, "id")
	if !ok {
		return badRequest("Invalid job ID")
	}

	if err := h.saved.Unsave(c.Request().Context(), p.UserID, jobID); err != nil {
		return fail(err)
	}
	return c.NoContent(http.StatusNoContent)
}
