package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobhub/internal/query"
	"jobhub/internal/service"
)

// JobHandler serves job listings.
type JobHandler struct {
	jobs service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobs service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// ListJobs godoc
// @Summary List jobs
// @Description Filters are conjunctive. "all" and "Any Salary" mean no filter. Signed-in callers get isSaved on each job.
// @Tags jobs
// @Produce json
// @Param search query string false "Substring of title, company or description"
// @Param category query string false "Exact category"
// @Param jobType query string false "Exact job type" Enums(Full Time, Part Time, Contract, Freelance)
// @Param location query string false "Substring of location or exact country"
// @Param remote query boolean false "Only remote jobs when true"
// @Param salary query string false "Salary band" Enums(Under $30k, $30k - $50k, $50k - $80k, $80k - $100k, $100k+)
// @Param sortBy query string false "Sort order" Enums(recent, salary, relevance) default(recent)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} JobPage
// @Failure 500 {object} errors.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c echo.Context) error {
	filter := query.ParseJobFilter(c.QueryParams())

	page, err := h.jobs.List(c.Request().Context(), viewerID(c), filter, pagination(c))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, page)
}

// GetJob godoc
// @Summary Get a job
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} model.JobView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest("Invalid job ID")
	}

	job, err := h.jobs.Get(c.Request().Context(), viewerID(c), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, job)
}
