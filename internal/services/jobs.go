package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jobscout/jobscout/internal/entities"
	"github.com/jobscout/jobscout/internal/metrics"
	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const DefaultPageSize = 10

type jobCatalog interface {
	Jobs() []entities.Job
	ByID(id string) (entities.Job, error)
}

// QueryResult is one page of the filtered catalog.
type QueryResult struct {
	Jobs    []entities.Job
	Page    int
	Limit   int
	Total   int
	HasMore bool
}

type Application struct {
	CoverLetter string `json:"coverLetter,omitempty"`
	Resume      string `json:"resume,omitempty"`
}

type ApplicationReceipt struct {
	ApplicationID string    `json:"applicationId"`
	JobID         string    `json:"jobId"`
	AppliedAt     time.Time `json:"appliedAt"`
}

type JobsService struct {
	catalog  jobCatalog
	pageSize int
	cache    *gocache.Cache
}

func NewJobsService(catalog jobCatalog, pageSize int) *JobsService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &JobsService{
		catalog:  catalog,
		pageSize: pageSize,
		cache:    gocache.New(10*time.Minute, 20*time.Minute),
	}
}

// Query applies text search, then AND-combined filters, then pages the
// result. A page beyond the filtered set yields an empty page with
// HasMore false.
func (s *JobsService) Query(ctx context.Context, page int, searchText string, filters entities.JobFilters) (QueryResult, error) {

	if page < 1 {
		return QueryResult{}, fmt.Errorf("page must be positive, got %d", page)
	}
	if err := ctx.Err(); err != nil {
		return QueryResult{}, err
	}

	start := time.Now()
	defer func() {
		metrics.QueryDuration.Observe(time.Since(start).Seconds())
	}()
	metrics.QueriesCounter.WithLabelValues("query").Inc()

	jobs := s.catalog.Jobs()

	if searchText != "" {
		needle := strings.ToLower(searchText)
		jobs = lo.Filter(jobs, func(job entities.Job, _ int) bool {
			return strings.Contains(strings.ToLower(job.Title), needle) ||
				strings.Contains(strings.ToLower(job.Company), needle) ||
				strings.Contains(strings.ToLower(job.Location), needle) ||
				strings.Contains(strings.ToLower(job.Category), needle)
		})
	}

	jobs = applyFilters(jobs, filters)

	total := len(jobs)
	startIndex := (page - 1) * s.pageSize
	endIndex := startIndex + s.pageSize

	var pageJobs []entities.Job
	if startIndex < total {
		if endIndex > total {
			endIndex = total
		}
		pageJobs = jobs[startIndex:endIndex]
	} else {
		pageJobs = []entities.Job{}
	}

	return QueryResult{
		Jobs:    pageJobs,
		Page:    page,
		Limit:   s.pageSize,
		Total:   total,
		HasMore: page*s.pageSize < total,
	}, nil
}

// Search is a page-1 query; kept as its own operation because callers
// treat it as superseding any in-flight pagination.
func (s *JobsService) Search(ctx context.Context, query string, filters entities.JobFilters) (QueryResult, error) {
	metrics.QueriesCounter.WithLabelValues("search").Inc()
	return s.Query(ctx, 1, query, filters)
}

func (s *JobsService) JobByID(ctx context.Context, id string) (entities.Job, error) {

	if cached, found := s.cache.Get(id); found {
		return cached.(entities.Job), nil
	}

	job, err := s.catalog.ByID(id)
	if err != nil {
		return entities.Job{}, err
	}

	if cacheErr := s.cache.Add(id, job, gocache.DefaultExpiration); cacheErr != nil {
		log.Errorf("failed to add job to cache: %v", cacheErr)
	}
	return job, nil
}

// PopularJobs returns the top of the unfiltered catalog.
func (s *JobsService) PopularJobs(ctx context.Context) ([]entities.Job, error) {
	result, err := s.Query(ctx, 1, "", entities.JobFilters{})
	if err != nil {
		return nil, err
	}
	if len(result.Jobs) > 5 {
		return result.Jobs[:5], nil
	}
	return result.Jobs, nil
}

func (s *JobsService) JobsByCategory(ctx context.Context, category string) (QueryResult, error) {
	return s.Query(ctx, 1, "", entities.JobFilters{Category: category})
}

// Apply records a mock application and hands back a receipt. A real
// backend would forward this to an ATS.
func (s *JobsService) Apply(ctx context.Context, jobID string, application Application) (ApplicationReceipt, error) {

	if _, err := s.JobByID(ctx, jobID); err != nil {
		return ApplicationReceipt{}, err
	}

	return ApplicationReceipt{
		ApplicationID: "app_" + uuid.NewString(),
		JobID:         jobID,
		AppliedAt:     time.Now(),
	}, nil
}

func applyFilters(jobs []entities.Job, filters entities.JobFilters) []entities.Job {

	if filters.IsZero() {
		return jobs
	}

	if filters.Location != "" {
		location := strings.ToLower(filters.Location)
		jobs = lo.Filter(jobs, func(job entities.Job, _ int) bool {
			return strings.Contains(strings.ToLower(job.Location), location)
		})
	}

	if filters.Type != "" {
		jobs = lo.Filter(jobs, func(job entities.Job, _ int) bool {
			return job.Type == filters.Type
		})
	}

	if filters.Category != "" {
		jobs = lo.Filter(jobs, func(job entities.Job, _ int) bool {
			return job.Category == filters.Category
		})
	}

	if filters.SalaryRange != nil {
		jobs = lo.Filter(jobs, func(job entities.Job, _ int) bool {
			return job.Salary != nil &&
				job.Salary.Min >= filters.SalaryRange.Min &&
				job.Salary.Max <= filters.SalaryRange.Max
		})
	}

	return jobs
}
