package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobscout/jobscout/internal/entities"
	"github.com/jobscout/jobscout/internal/services"
	"github.com/jobscout/jobscout/pkg/format"
	"github.com/pkg/errors"
)

type jobsHandler struct {
	jobs *services.JobsService
}

func newJobsHandler(jobs *services.JobsService) *jobsHandler {
	return &jobsHandler{jobs: jobs}
}

type applyRequest struct {
	CoverLetter string `json:"coverLetter"`
	Resume      string `json:"resume"`
}

// jobDetailsResponse adds the display strings mobile clients render
// directly.
type jobDetailsResponse struct {
	entities.Job
	SalaryText   string `json:"salaryText,omitempty"`
	PostedAtText string `json:"postedAtText"`
}

func toJobDetails(job entities.Job) jobDetailsResponse {
	resp := jobDetailsResponse{
		Job:          job,
		PostedAtText: format.PostedAt(job.PostedAt, time.Now()),
	}
	if job.Salary != nil {
		resp.SalaryText = format.Salary(job.Salary.Min, job.Salary.Max, job.Salary.Currency)
	}
	return resp
}

// ListJobs handles GET /jobs?page=&search=&location=&type=&category=
// &salary_min=&salary_max=
func (h *jobsHandler) ListJobs(c *gin.Context) {

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, fail("page must be a positive integer"))
		return
	}

	filters, err := filtersFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, fail(err.Error()))
		return
	}

	result, err := h.jobs.Query(c.Request.Context(), page, c.Query("search"), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail("failed to fetch jobs"))
		return
	}

	c.JSON(http.StatusOK, okPaged(result.Jobs, "Jobs fetched successfully", pagination{
		Page:    result.Page,
		Limit:   result.Limit,
		Total:   result.Total,
		HasMore: result.HasMore,
	}))
}

func (h *jobsHandler) PopularJobs(c *gin.Context) {
	jobs, err := h.jobs.PopularJobs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail("failed to fetch popular jobs"))
		return
	}
	c.JSON(http.StatusOK, ok(jobs, "Popular jobs fetched successfully"))
}

func (h *jobsHandler) JobDetails(c *gin.Context) {

	job, err := h.jobs.JobByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, entities.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, fail("job not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, fail("failed to fetch job details"))
		return
	}

	c.JSON(http.StatusOK, ok(toJobDetails(job), "Job details fetched successfully"))
}

func (h *jobsHandler) Apply(c *gin.Context) {

	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail("invalid request body: "+err.Error()))
		return
	}

	receipt, err := h.jobs.Apply(c.Request.Context(), c.Param("id"), services.Application{
		CoverLetter: req.CoverLetter,
		Resume:      req.Resume,
	})
	if err != nil {
		if errors.Is(err, entities.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, fail("job not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, fail("failed to submit application"))
		return
	}

	c.JSON(http.StatusOK, ok(receipt, "Application submitted successfully"))
}

func filtersFromQuery(c *gin.Context) (entities.JobFilters, error) {

	filters := entities.JobFilters{
		Location: c.Query("location"),
		Category: c.Query("category"),
	}

	if rawType := c.Query("type"); rawType != "" {
		jobType, err := entities.ToJobType(rawType)
		if err != nil {
			return entities.JobFilters{}, err
		}
		filters.Type = jobType
	}

	rawMin, rawMax := c.Query("salary_min"), c.Query("salary_max")
	if rawMin != "" || rawMax != "" {
		bounds := &entities.SalaryBounds{}
		var err error
		if rawMin != "" {
			if bounds.Min, err = strconv.Atoi(rawMin); err != nil {
				return entities.JobFilters{}, errors.New("salary_min must be an integer")
			}
		}
		if rawMax != "" {
			if bounds.Max, err = strconv.Atoi(rawMax); err != nil {
				return entities.JobFilters{}, errors.New("salary_max must be an integer")
			}
		}
		filters.SalaryRange = bounds
	}

	return filters, nil
}
