package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobhub/internal/service"
)

// JobSourceHandler serves job board submissions.
type JobSourceHandler struct {
	sources service.JobSourceService
}

// NewJobSourceHandler creates a new job source handler.
func NewJobSourceHandler(sources service.JobSourceService) *JobSourceHandler {
	return &JobSourceHandler{sources: sources}
}

// JobSourceRequest represents a job source submission.
type JobSourceRequest struct {
	Name           string  `json:"name" validate:"required,max=255"`
	URL            string  `json:"url" validate:"required,url,max=1024"`
	Category       string  `json:"category" validate:"required,max=255"`
	Description    *string `json:"description,omitempty"`
	SubmitterEmail *string `json:"submitterEmail,omitempty" validate:"omitempty,email"`
}

// ListJobSources godoc
// @Summary List approved job sources
// @Tags job-sources
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} JobSourcePage
// @Failure 500 {object} errors.ErrorResponse
// @Router /job-sources [get]
func (h *JobSourceHandler) ListJobSources(c echo.Context) error {
	page, err := h.sources.List(c.Request().Context(), pagination(c))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, page)
}

// SubmitJobSource godoc
// @Summary Submit a job source
// @Description The source is stored unapproved and stays hidden from the list until approved.
// @Tags job-sources
// @Accept json
// @Produce json
// @Param request body JobSourceRequest true "Job source"
// @Success 201 {object} model.JobSource
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /job-sources [post]
func (h *JobSourceHandler) SubmitJobSource(c echo.Context) error {
	var req JobSourceRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("Invalid data")
	}

	if err := c.Validate(&req); err != nil {
		return invalid("Invalid data", err)
	}

	source, err := h.sources.Submit(c.Request().Context(), service.JobSourceInput{
		Name:           req.Name,
		URL:            req.URL,
		Category:       req.Category,
		Description:    req.Description,
		SubmitterEmail: req.SubmitterEmail,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, source)
}
